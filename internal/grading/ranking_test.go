package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankDescending(t *testing.T) {
	standings := []Standing{
		{ID: 1, Score: 7.5},
		{ID: 2, Score: 9.1},
		{ID: 3, Score: 8.3},
	}

	ranked := RankDescending(standings)

	require.Len(t, ranked, 3)
	assert.Equal(t, Standing{ID: 2, Score: 9.1, Rank: 1}, ranked[0])
	assert.Equal(t, Standing{ID: 3, Score: 8.3, Rank: 2}, ranked[1])
	assert.Equal(t, Standing{ID: 1, Score: 7.5, Rank: 3}, ranked[2])

	// Input slice is left untouched.
	assert.Equal(t, 0, standings[0].Rank)
}

func TestRankDescendingPermutation(t *testing.T) {
	standings := []Standing{
		{ID: 10, Score: 4.0},
		{ID: 11, Score: 10.0},
		{ID: 12, Score: 6.6},
		{ID: 13, Score: 0.0},
	}

	ranked := RankDescending(standings)

	seen := make(map[int]bool)
	for _, s := range ranked {
		seen[s.Rank] = true
	}
	for want := 1; want <= len(standings); want++ {
		assert.True(t, seen[want], "rank %d missing", want)
	}
	assert.Equal(t, 11, ranked[0].ID)
}

// Ties keep insertion order: the repository loads standings in record id
// order, so the earlier record wins the lower rank.
func TestRankDescendingStableTies(t *testing.T) {
	standings := []Standing{
		{ID: 1, Score: 8.0},
		{ID: 2, Score: 8.0},
		{ID: 3, Score: 8.0},
	}

	ranked := RankDescending(standings)
	assert.Equal(t, []Standing{
		{ID: 1, Score: 8.0, Rank: 1},
		{ID: 2, Score: 8.0, Rank: 2},
		{ID: 3, Score: 8.0, Rank: 3},
	}, ranked)
}

func TestRankDescendingIdempotent(t *testing.T) {
	standings := []Standing{
		{ID: 1, Score: 5.5},
		{ID: 2, Score: 9.9},
		{ID: 3, Score: 5.5},
	}

	first := RankDescending(standings)
	second := RankDescending(standings)
	assert.Equal(t, first, second)
}

func TestRankDescendingEmpty(t *testing.T) {
	assert.Empty(t, RankDescending(nil))
}
