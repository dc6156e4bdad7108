package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrBadBatchContext is returned when the first data row of an import does
// not carry numeric semester and year columns. One import batch targets
// exactly one (semester, year); the first row decides which.
var ErrBadBatchContext = errors.New("first row must carry numeric semester and year columns")

// tableRow is one import row as a column name to raw string value mapping.
type tableRow map[string]string

// rowMaps converts raw records into rows keyed by the trimmed header. The
// first record is the header; fully empty records are skipped. Short records
// simply lack the trailing columns.
func rowMaps(records [][]string) []tableRow {
	if len(records) == 0 {
		return nil
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	rows := make([]tableRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(tableRow, len(header))
		empty := true
		for i, raw := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			value := strings.TrimSpace(raw)
			if value != "" {
				empty = false
			}
			row[header[i]] = value
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows
}

// batchContext extracts the (semester, year) the whole batch targets from
// the first data row.
func batchContext(rows []tableRow) (semester, year int, err error) {
	if len(rows) == 0 {
		return 0, 0, ErrBadBatchContext
	}
	semester, err = strconv.Atoi(rows[0]["semester"])
	if err != nil {
		return 0, 0, ErrBadBatchContext
	}
	year, err = strconv.Atoi(rows[0]["year"])
	if err != nil {
		return 0, 0, ErrBadBatchContext
	}
	return semester, year, nil
}

// parseMark parses one mark column. Missing or non-numeric values become
// NaN, which the grade mapper places in the lowest band.
func parseMark(raw string) float64 {
	m, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return m
}
