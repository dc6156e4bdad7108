package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapThresholds(t *testing.T) {
	tests := []struct {
		name   string
		marks  float64
		grade  Grade
		points int
	}{
		{"exactly 90 is O", 90, GradeO, 10},
		{"above 100 still O", 120, GradeO, 10},
		{"89 is A+", 89, GradeAPlus, 9},
		{"exactly 80 is A+", 80, GradeAPlus, 9},
		{"exactly 70 is A", 70, GradeA, 8},
		{"exactly 60 is B+", 60, GradeBPlus, 7},
		{"59 is B", 59, GradeB, 6},
		{"exactly 55 is B", 55, GradeB, 6},
		{"exactly 50 is C", 50, GradeC, 5},
		{"exactly 40 is P", 40, GradeP, 4},
		{"39 is F", 39, GradeF, 0},
		{"zero is F", 0, GradeF, 0},
		{"negative is F", -5, GradeF, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade, points := Map(tt.marks)
			assert.Equal(t, tt.grade, grade)
			assert.Equal(t, tt.points, points)
		})
	}
}

// Unparseable import columns propagate as NaN, which fails every threshold
// comparison and must land in the F band.
func TestMapNaN(t *testing.T) {
	grade, points := Map(math.NaN())
	assert.Equal(t, GradeF, grade)
	assert.Equal(t, 0, points)
}

func TestMapDeterministic(t *testing.T) {
	for _, marks := range []float64{-10, 0, 39.9, 40, 54.99, 76, 90, 100, 150} {
		g1, p1 := Map(marks)
		g2, p2 := Map(marks)
		assert.Equal(t, g1, g2)
		assert.Equal(t, p1, p2)
	}
}
