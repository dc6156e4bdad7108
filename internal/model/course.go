package model

import "time"

// Course is one entry in a course catalog. Credits weight the course's
// contribution to the SGPA and must be positive.
type Course struct {
	ID          int       `json:"id"`
	CatalogID   int       `json:"-"`
	CourseCode  string    `json:"course_code"`
	CourseTitle string    `json:"course_title"`
	Credits     float64   `json:"credits"`
	CreatedAt   time.Time `json:"created_at"`
}

// CourseCatalog is the set of courses offered in one (semester, year).
// Course codes are unique within a catalog; the order is the order of
// submission.
type CourseCatalog struct {
	ID        int       `json:"id"`
	Semester  int       `json:"semester"`
	Year      int       `json:"year"`
	Courses   []Course  `json:"courses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindCourse returns the catalog entry with the given code, or nil.
func (c *CourseCatalog) FindCourse(code string) *Course {
	for i := range c.Courses {
		if c.Courses[i].CourseCode == code {
			return &c.Courses[i]
		}
	}
	return nil
}

// CourseInput is one course definition inside a catalog submission.
type CourseInput struct {
	CourseCode  string  `json:"course_code" binding:"required,min=2,max=20"`
	CourseTitle string  `json:"course_title" binding:"required,min=2,max=150"`
	Credits     float64 `json:"credits" binding:"required,gt=0"`
}

// CreateCoursesRequest creates a catalog for (semester, year) on first
// submission and appends to it afterwards.
type CreateCoursesRequest struct {
	Semester int           `json:"semester" binding:"required,min=1"`
	Year     int           `json:"year" binding:"required,min=1900"`
	Courses  []CourseInput `json:"courses" binding:"required,min=1,dive"`
}
