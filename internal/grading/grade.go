package grading

// Grade is the letter grade on the 0-10 grade point scale.
type Grade string

const (
	GradeO     Grade = "O"
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeP     Grade = "P"
	GradeF     Grade = "F"
)

// gradeBand is one row of the threshold table, evaluated top-down.
type gradeBand struct {
	min    float64
	grade  Grade
	points int
}

var gradeBands = []gradeBand{
	{90, GradeO, 10},
	{80, GradeAPlus, 9},
	{70, GradeA, 8},
	{60, GradeBPlus, 7},
	{55, GradeB, 6},
	{50, GradeC, 5},
	{40, GradeP, 4},
}

// Map converts raw marks into a letter grade and grade points. The highest
// matching threshold wins. Marks are not range-validated: values below 40
// (including negatives and NaN, which fails every comparison) land in the F
// band, values above 100 land in O.
func Map(marks float64) (Grade, int) {
	for _, b := range gradeBands {
		if marks >= b.min {
			return b.grade, b.points
		}
	}
	return GradeF, 0
}
