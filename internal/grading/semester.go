package grading

import (
	"errors"
	"fmt"

	"github.com/acadra/gradebook-backend/internal/model"
)

// Sentinel errors for semester aggregation.
var (
	// ErrNoCredits is returned when the submitted course list carries zero
	// total credits, which would otherwise divide the SGPA into NaN.
	ErrNoCredits = errors.New("no credits to aggregate")

	// ErrNoSemesters is returned by CGPA when a student has no stored
	// semester records.
	ErrNoSemesters = errors.New("no semester records")
)

// UnknownCourseError reports a mark whose course code is not in the catalog
// for the targeted (semester, year). The whole aggregation aborts; no partial
// record is produced.
type UnknownCourseError struct {
	Code     string
	Semester int
	Year     int
}

func (e *UnknownCourseError) Error() string {
	return fmt.Sprintf("course %q not found in catalog for semester %d/%d", e.Code, e.Semester, e.Year)
}

// CourseMark is one (courseCode, marks) pair of a submission.
type CourseMark struct {
	CourseCode string
	Marks      float64
}

// OrderedMarks converts a marks map into catalog-ordered pairs. Every key
// must match a catalog course; a leftover key aborts with
// *UnknownCourseError so callers never persist a partial submission.
func OrderedMarks(catalog *model.CourseCatalog, marks map[string]float64) ([]CourseMark, error) {
	pairs := make([]CourseMark, 0, len(marks))
	for _, course := range catalog.Courses {
		if m, ok := marks[course.CourseCode]; ok {
			pairs = append(pairs, CourseMark{CourseCode: course.CourseCode, Marks: m})
		}
	}
	if len(pairs) != len(marks) {
		for code := range marks {
			if catalog.FindCourse(code) == nil {
				return nil, &UnknownCourseError{Code: code, Semester: catalog.Semester, Year: catalog.Year}
			}
		}
	}
	return pairs, nil
}

// ComputeSemester turns raw marks into a fully computed semester record:
// one grade record per pair (looked up in the catalog, denormalized copy of
// title and credits) and the credit-weighted SGPA over the pairs.
//
// It aborts with *UnknownCourseError if any course code is missing from the
// catalog and with ErrNoCredits if the pair list is empty. The returned
// record carries no rank; ranks are assigned by a later ranking pass.
func ComputeSemester(semester, year int, pairs []CourseMark, catalog *model.CourseCatalog) (*model.SemesterRecord, error) {
	grades := make([]model.GradeRecord, 0, len(pairs))
	var totalCreditPoints, totalCredits float64

	for _, pair := range pairs {
		course := catalog.FindCourse(pair.CourseCode)
		if course == nil {
			return nil, &UnknownCourseError{Code: pair.CourseCode, Semester: semester, Year: year}
		}

		grade, points := Map(pair.Marks)
		creditPoints := float64(points) * course.Credits

		grades = append(grades, model.GradeRecord{
			CourseCode:   course.CourseCode,
			CourseTitle:  course.CourseTitle,
			Credits:      course.Credits,
			Marks:        model.Marks(pair.Marks),
			Grade:        string(grade),
			GradePoints:  points,
			CreditPoints: creditPoints,
		})

		totalCreditPoints += creditPoints
		totalCredits += course.Credits
	}

	if totalCredits == 0 {
		return nil, ErrNoCredits
	}

	return &model.SemesterRecord{
		Semester: semester,
		Year:     year,
		Grades:   grades,
		SGPA:     totalCreditPoints / totalCredits,
	}, nil
}

// CGPA is the unweighted arithmetic mean of the SGPAs across all stored
// semesters. Credits do not weight across semesters, only within one.
func CGPA(records []model.SemesterRecord) (float64, error) {
	if len(records) == 0 {
		return 0, ErrNoSemesters
	}
	var sum float64
	for _, rec := range records {
		sum += rec.SGPA
	}
	return sum / float64(len(records)), nil
}
