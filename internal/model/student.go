package model

import "time"

// GradeRecord is the computed result for one course in one semester of a
// student. Title and credits are copied from the catalog at computation time;
// later catalog edits do not rewrite records that were already computed.
type GradeRecord struct {
	ID           int     `json:"id"`
	CourseCode   string  `json:"course_code"`
	CourseTitle  string  `json:"course_title"`
	Credits      float64 `json:"credits"`
	Marks        Marks   `json:"marks"`
	Grade        string  `json:"grade"`
	GradePoints  int     `json:"grade_points"`
	CreditPoints float64 `json:"credit_points"`
}

// SemesterRecord holds one semester's grade records and SGPA for a student.
// SGPARank is nil until a ranking pass has covered this (semester, year)
// cohort.
type SemesterRecord struct {
	ID        int           `json:"id"`
	Semester  int           `json:"semester"`
	Year      int           `json:"year"`
	Grades    []GradeRecord `json:"grades"`
	SGPA      float64       `json:"sgpa"`
	SGPARank  *int          `json:"sgpa_rank"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Student is the full academic record keyed by roll number. CGPA is the
// unweighted mean of the semester SGPAs; CGPARank is global and nil until the
// first CGPA ranking pass.
type Student struct {
	ID         int              `json:"id"`
	RollNumber string           `json:"roll_number"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Semesters  []SemesterRecord `json:"semesters"`
	CGPA       float64          `json:"cgpa"`
	CGPARank   *int             `json:"cgpa_rank"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// FindSemester returns the student's record for (semester, year), or nil.
func (s *Student) FindSemester(semester, year int) *SemesterRecord {
	for i := range s.Semesters {
		if s.Semesters[i].Semester == semester && s.Semesters[i].Year == year {
			return &s.Semesters[i]
		}
	}
	return nil
}

// StudentSummary is the listing/leaderboard projection of a student.
type StudentSummary struct {
	ID         int     `json:"id"`
	RollNumber string  `json:"roll_number"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	CGPA       float64 `json:"cgpa"`
	CGPARank   *int    `json:"cgpa_rank"`
}

// SGPAStanding is one leaderboard row for the global SGPA top list.
type SGPAStanding struct {
	RollNumber string  `json:"roll_number"`
	Name       string  `json:"name"`
	Semester   int     `json:"semester"`
	Year       int     `json:"year"`
	SGPA       float64 `json:"sgpa"`
	SGPARank   *int    `json:"sgpa_rank"`
}

// SemesterRanks is the per-semester slice of the ranks view.
type SemesterRanks struct {
	Semester int     `json:"semester"`
	Year     int     `json:"year"`
	SGPA     float64 `json:"sgpa"`
	SGPARank *int    `json:"sgpa_rank"`
}

// StudentRanks is returned by the ranks endpoint.
type StudentRanks struct {
	RollNumber string          `json:"roll_number"`
	Name       string          `json:"name"`
	CGPA       float64         `json:"cgpa"`
	CGPARank   *int            `json:"cgpa_rank"`
	Semesters  []SemesterRanks `json:"semesters"`
}

// CreateStudentRequest is the payload for registering a student.
type CreateStudentRequest struct {
	RollNumber string `json:"roll_number" binding:"required,min=2,max=30"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
}

// SubmitMarksRequest submits raw marks for one (semester, year), one entry
// per course code from that semester's catalog.
type SubmitMarksRequest struct {
	Semester int                `json:"semester" binding:"required,min=1"`
	Year     int                `json:"year" binding:"required,min=1900"`
	Marks    map[string]float64 `json:"marks" binding:"required,min=1"`
}
