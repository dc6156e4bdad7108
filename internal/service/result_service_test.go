package service

import (
	"testing"

	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSemesterAppends(t *testing.T) {
	existing := []model.SemesterRecord{
		{Semester: 1, Year: 2024, SGPA: 8.0},
	}
	rec := &model.SemesterRecord{Semester: 2, Year: 2024, SGPA: 9.0}

	merged := mergeSemester(existing, rec)
	require.Len(t, merged, 2)
	assert.Equal(t, 9.0, merged[1].SGPA)

	// Input slice is untouched.
	assert.Len(t, existing, 1)
}

func TestMergeSemesterReplacesInPlace(t *testing.T) {
	existing := []model.SemesterRecord{
		{Semester: 1, Year: 2024, SGPA: 8.0},
		{Semester: 2, Year: 2024, SGPA: 6.0},
	}
	rec := &model.SemesterRecord{Semester: 1, Year: 2024, SGPA: 9.5}

	merged := mergeSemester(existing, rec)
	require.Len(t, merged, 2)
	assert.Equal(t, 9.5, merged[0].SGPA)
	assert.Equal(t, 6.0, merged[1].SGPA)
	assert.Equal(t, 8.0, existing[0].SGPA)
}

func TestMergeSemesterFromEmpty(t *testing.T) {
	rec := &model.SemesterRecord{Semester: 1, Year: 2024, SGPA: 7.0}
	merged := mergeSemester(nil, rec)
	require.Len(t, merged, 1)
	assert.Equal(t, 7.0, merged[0].SGPA)
}
