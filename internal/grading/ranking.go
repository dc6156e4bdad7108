package grading

import "sort"

// Standing is one row of a ranking pass: a record identifier, the score to
// rank by (SGPA or CGPA) and the assigned 1-based rank.
type Standing struct {
	ID    int
	Score float64
	Rank  int
}

// RankDescending sorts standings by score descending and assigns ranks
// 1..N in sorted order. The sort is stable, so ties keep the input order
// (repositories load standings in insertion order). Re-running over the same
// standings yields the same assignment.
func RankDescending(standings []Standing) []Standing {
	ranked := make([]Standing, len(standings))
	copy(ranked, standings)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
