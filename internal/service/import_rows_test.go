package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowMaps(t *testing.T) {
	records := [][]string{
		{"roll_number", "name", "email", "semester", "year", "CS101", "MA101"},
		{"R1", "Ada Lovelace", "ada@example.com", "1", "2024", "95", "88"},
		{"R2", "Alan Turing", "alan@example.com", "1", "2024", "45"}, // short row
		{"", "", "", "", "", "", ""},                                 // empty row
	}

	rows := rowMaps(records)
	require.Len(t, rows, 2)

	assert.Equal(t, "R1", rows[0]["roll_number"])
	assert.Equal(t, "95", rows[0]["CS101"])
	assert.Equal(t, "88", rows[0]["MA101"])

	assert.Equal(t, "R2", rows[1]["roll_number"])
	_, hasMA := rows[1]["MA101"]
	assert.False(t, hasMA)
}

func TestRowMapsTrimsHeader(t *testing.T) {
	rows := rowMaps([][]string{
		{" roll_number ", " CS101"},
		{" R1 ", " 90 "},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, "R1", rows[0]["roll_number"])
	assert.Equal(t, "90", rows[0]["CS101"])
}

func TestRowMapsEmptyInput(t *testing.T) {
	assert.Nil(t, rowMaps(nil))
	assert.Empty(t, rowMaps([][]string{{"roll_number"}}))
}

func TestBatchContext(t *testing.T) {
	rows := []tableRow{
		{"roll_number": "R1", "semester": "2", "year": "2025"},
		{"roll_number": "R2", "semester": "9", "year": "1999"}, // only first row counts
	}

	semester, year, err := batchContext(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, semester)
	assert.Equal(t, 2025, year)
}

func TestBatchContextErrors(t *testing.T) {
	_, _, err := batchContext(nil)
	assert.ErrorIs(t, err, ErrBadBatchContext)

	_, _, err = batchContext([]tableRow{{"semester": "one", "year": "2024"}})
	assert.ErrorIs(t, err, ErrBadBatchContext)

	_, _, err = batchContext([]tableRow{{"semester": "1"}})
	assert.ErrorIs(t, err, ErrBadBatchContext)
}

func TestParseMark(t *testing.T) {
	assert.Equal(t, 95.0, parseMark("95"))
	assert.Equal(t, 72.5, parseMark("72.5"))
	assert.True(t, math.IsNaN(parseMark("")))
	assert.True(t, math.IsNaN(parseMark("absent")))
}
