package grading

import (
	"math"
	"testing"

	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *model.CourseCatalog {
	return &model.CourseCatalog{
		Semester: 1,
		Year:     2024,
		Courses: []model.Course{
			{CourseCode: "CS101", CourseTitle: "Intro to Programming", Credits: 4},
			{CourseCode: "MA101", CourseTitle: "Calculus I", Credits: 3},
			{CourseCode: "PH101", CourseTitle: "Physics I", Credits: 3},
		},
	}
}

func TestComputeSemester(t *testing.T) {
	pairs := []CourseMark{
		{CourseCode: "CS101", Marks: 95},
		{CourseCode: "MA101", Marks: 72},
		{CourseCode: "PH101", Marks: 58},
	}

	rec, err := ComputeSemester(1, 2024, pairs, testCatalog())
	require.NoError(t, err)

	require.Len(t, rec.Grades, 3)
	assert.Equal(t, 1, rec.Semester)
	assert.Equal(t, 2024, rec.Year)
	assert.Nil(t, rec.SGPARank)

	cs := rec.Grades[0]
	assert.Equal(t, "CS101", cs.CourseCode)
	assert.Equal(t, "Intro to Programming", cs.CourseTitle)
	assert.Equal(t, "O", cs.Grade)
	assert.Equal(t, 10, cs.GradePoints)
	assert.Equal(t, 40.0, cs.CreditPoints)

	// (10*4 + 8*3 + 6*3) / (4+3+3)
	assert.InDelta(t, 8.2, rec.SGPA, 1e-9)
}

func TestComputeSemesterSingleCourseScenario(t *testing.T) {
	catalog := &model.CourseCatalog{
		Semester: 1,
		Year:     2024,
		Courses:  []model.Course{{CourseCode: "CS101", CourseTitle: "Intro to Programming", Credits: 4}},
	}

	r1, err := ComputeSemester(1, 2024, []CourseMark{{CourseCode: "CS101", Marks: 95}}, catalog)
	require.NoError(t, err)
	assert.Equal(t, "O", r1.Grades[0].Grade)
	assert.Equal(t, 10, r1.Grades[0].GradePoints)
	assert.Equal(t, 40.0, r1.Grades[0].CreditPoints)
	assert.Equal(t, 10.0, r1.SGPA)

	r2, err := ComputeSemester(1, 2024, []CourseMark{{CourseCode: "CS101", Marks: 45}}, catalog)
	require.NoError(t, err)
	assert.Equal(t, 4.0, r2.SGPA)
}

func TestComputeSemesterUnknownCourseAborts(t *testing.T) {
	pairs := []CourseMark{
		{CourseCode: "CS101", Marks: 95},
		{CourseCode: "EE999", Marks: 80},
	}

	rec, err := ComputeSemester(1, 2024, pairs, testCatalog())
	assert.Nil(t, rec)

	var unknownErr *UnknownCourseError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "EE999", unknownErr.Code)
	assert.Equal(t, 1, unknownErr.Semester)
	assert.Equal(t, 2024, unknownErr.Year)
}

func TestComputeSemesterEmptyPairs(t *testing.T) {
	rec, err := ComputeSemester(1, 2024, nil, testCatalog())
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrNoCredits)
}

func TestComputeSemesterIdempotent(t *testing.T) {
	pairs := []CourseMark{
		{CourseCode: "CS101", Marks: 67},
		{CourseCode: "MA101", Marks: 88},
	}

	first, err := ComputeSemester(1, 2024, pairs, testCatalog())
	require.NoError(t, err)
	second, err := ComputeSemester(1, 2024, pairs, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// NaN marks (unparseable import columns) grade as F with zero credit points
// but the credits still count in the divisor.
func TestComputeSemesterNaNMarks(t *testing.T) {
	pairs := []CourseMark{
		{CourseCode: "CS101", Marks: math.NaN()},
		{CourseCode: "MA101", Marks: 70},
	}

	rec, err := ComputeSemester(1, 2024, pairs, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, "F", rec.Grades[0].Grade)
	assert.Equal(t, 0.0, rec.Grades[0].CreditPoints)
	assert.True(t, math.IsNaN(float64(rec.Grades[0].Marks)))
	// 8*3 / (4+3)
	assert.InDelta(t, 24.0/7.0, rec.SGPA, 1e-9)
}

func TestOrderedMarks(t *testing.T) {
	pairs, err := OrderedMarks(testCatalog(), map[string]float64{
		"PH101": 60,
		"CS101": 90,
	})
	require.NoError(t, err)
	// Catalog order, not map order.
	require.Len(t, pairs, 2)
	assert.Equal(t, "CS101", pairs[0].CourseCode)
	assert.Equal(t, "PH101", pairs[1].CourseCode)
}

func TestOrderedMarksUnknownCode(t *testing.T) {
	pairs, err := OrderedMarks(testCatalog(), map[string]float64{
		"CS101": 90,
		"ZZ000": 50,
	})
	assert.Nil(t, pairs)

	var unknownErr *UnknownCourseError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "ZZ000", unknownErr.Code)
}

func TestCGPA(t *testing.T) {
	records := []model.SemesterRecord{
		{Semester: 1, Year: 2024, SGPA: 8.0},
		{Semester: 2, Year: 2024, SGPA: 9.0},
	}

	cgpa, err := CGPA(records)
	require.NoError(t, err)
	assert.Equal(t, 8.5, cgpa)

	// Overwriting a semester with identical data leaves the mean unchanged.
	again, err := CGPA(records)
	require.NoError(t, err)
	assert.Equal(t, cgpa, again)

	// Adding a third semester moves the mean to the new average.
	records = append(records, model.SemesterRecord{Semester: 1, Year: 2025, SGPA: 7.0})
	cgpa, err = CGPA(records)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cgpa)
}

func TestCGPANoSemesters(t *testing.T) {
	_, err := CGPA(nil)
	assert.ErrorIs(t, err, ErrNoSemesters)
}
