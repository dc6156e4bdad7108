package repository

import (
	"context"
	"errors"

	"github.com/acadra/gradebook-backend/internal/grading"
	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors shared by the repositories.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateRoll = errors.New("student with this roll number already exists")
)

// StudentRepository handles student, semester record and grade record data
// access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create inserts a new student with no semester history.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (roll_number, name, email)
		 VALUES ($1, $2, $3)
		 RETURNING id, cgpa, created_at, updated_at`,
		s.RollNumber, s.Name, s.Email,
	).Scan(&s.ID, &s.CGPA, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateRoll
		}
		return err
	}
	return nil
}

// GetByRoll retrieves a student with the full semester history, semesters and
// grade records in insertion order.
func (r *StudentRepository) GetByRoll(ctx context.Context, roll string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, roll_number, name, email, cgpa, cgpa_rank, created_at, updated_at
		 FROM students WHERE roll_number = $1`, roll,
	).Scan(&s.ID, &s.RollNumber, &s.Name, &s.Email, &s.CGPA, &s.CGPARank, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	semesters, err := r.loadSemesters(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Semesters = semesters
	return s, nil
}

func (r *StudentRepository) loadSemesters(ctx context.Context, studentID int) ([]model.SemesterRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, semester, year, sgpa, sgpa_rank, created_at, updated_at
		 FROM semester_records WHERE student_id = $1 ORDER BY id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []model.SemesterRecord
	for rows.Next() {
		var rec model.SemesterRecord
		if err := rows.Scan(&rec.ID, &rec.Semester, &rec.Year, &rec.SGPA, &rec.SGPARank, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		semesters = append(semesters, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range semesters {
		grades, err := r.loadGrades(ctx, semesters[i].ID)
		if err != nil {
			return nil, err
		}
		semesters[i].Grades = grades
	}
	return semesters, nil
}

func (r *StudentRepository) loadGrades(ctx context.Context, semesterRecordID int) ([]model.GradeRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_code, course_title, credits, marks, grade, grade_points, credit_points
		 FROM grade_records WHERE semester_record_id = $1 ORDER BY id`, semesterRecordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []model.GradeRecord
	for rows.Next() {
		var g model.GradeRecord
		if err := rows.Scan(&g.ID, &g.CourseCode, &g.CourseTitle, &g.Credits, &g.Marks, &g.Grade, &g.GradePoints, &g.CreditPoints); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// ListSummaries retrieves the listing projection of all students.
func (r *StudentRepository) ListSummaries(ctx context.Context) ([]model.StudentSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, roll_number, name, email, cgpa, cgpa_rank
		 FROM students ORDER BY roll_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.StudentSummary
	for rows.Next() {
		var s model.StudentSummary
		if err := rows.Scan(&s.ID, &s.RollNumber, &s.Name, &s.Email, &s.CGPA, &s.CGPARank); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// ReplaceSemester stores a computed semester record for a student and the
// recomputed CGPA in one transaction. An existing record for the same
// (semester, year) is overwritten in place: its grade records are replaced
// wholesale and its rank is cleared until the next ranking pass.
func (r *StudentRepository) ReplaceSemester(ctx context.Context, studentID int, rec *model.SemesterRecord, cgpa float64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO semester_records (student_id, semester, year, sgpa)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (student_id, semester, year)
		 DO UPDATE SET sgpa = EXCLUDED.sgpa, sgpa_rank = NULL, updated_at = CURRENT_TIMESTAMP
		 RETURNING id`,
		studentID, rec.Semester, rec.Year, rec.SGPA,
	).Scan(&rec.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM grade_records WHERE semester_record_id = $1`, rec.ID); err != nil {
		return err
	}

	for i := range rec.Grades {
		g := &rec.Grades[i]
		err := tx.QueryRow(ctx,
			`INSERT INTO grade_records
			   (semester_record_id, course_code, course_title, credits, marks, grade, grade_points, credit_points)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			rec.ID, g.CourseCode, g.CourseTitle, g.Credits, g.Marks, g.Grade, g.GradePoints, g.CreditPoints,
		).Scan(&g.ID)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE students SET cgpa = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		cgpa, studentID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CohortStandings loads (record id, sgpa) for every semester record with the
// given (semester, year), in insertion order so rank ties stay stable.
func (r *StudentRepository) CohortStandings(ctx context.Context, semester, year int) ([]grading.Standing, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, sgpa FROM semester_records
		 WHERE semester = $1 AND year = $2 ORDER BY id`, semester, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStandings(rows)
}

// GlobalStandings loads (student id, cgpa) for every student, in insertion
// order.
func (r *StudentRepository) GlobalStandings(ctx context.Context) ([]grading.Standing, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, cgpa FROM students ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStandings(rows)
}

func scanStandings(rows pgx.Rows) ([]grading.Standing, error) {
	var standings []grading.Standing
	for rows.Next() {
		var s grading.Standing
		if err := rows.Scan(&s.ID, &s.Score); err != nil {
			return nil, err
		}
		standings = append(standings, s)
	}
	return standings, rows.Err()
}

// UpdateSGPARanks persists the ranks of one SGPA pass. Standing IDs are
// semester record ids.
func (r *StudentRepository) UpdateSGPARanks(ctx context.Context, ranked []grading.Standing) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range ranked {
		if _, err := tx.Exec(ctx,
			`UPDATE semester_records SET sgpa_rank = $1 WHERE id = $2`, s.Rank, s.ID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// UpdateCGPARanks persists the ranks of one CGPA pass. Standing IDs are
// student ids.
func (r *StudentRepository) UpdateCGPARanks(ctx context.Context, ranked []grading.Standing) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range ranked {
		if _, err := tx.Exec(ctx,
			`UPDATE students SET cgpa_rank = $1 WHERE id = $2`, s.Rank, s.ID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// TopByCGPA returns the top students by CGPA, ties resolved by insertion
// order like the ranking pass itself.
func (r *StudentRepository) TopByCGPA(ctx context.Context, limit int) ([]model.StudentSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, roll_number, name, email, cgpa, cgpa_rank
		 FROM students ORDER BY cgpa DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.StudentSummary
	for rows.Next() {
		var s model.StudentSummary
		if err := rows.Scan(&s.ID, &s.RollNumber, &s.Name, &s.Email, &s.CGPA, &s.CGPARank); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// TopBySGPA returns the top semester records by SGPA across all cohorts.
func (r *StudentRepository) TopBySGPA(ctx context.Context, limit int) ([]model.SGPAStanding, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT st.roll_number, st.name, sr.semester, sr.year, sr.sgpa, sr.sgpa_rank
		 FROM semester_records sr
		 JOIN students st ON st.id = sr.student_id
		 ORDER BY sr.sgpa DESC, sr.id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []model.SGPAStanding
	for rows.Next() {
		var s model.SGPAStanding
		if err := rows.Scan(&s.RollNumber, &s.Name, &s.Semester, &s.Year, &s.SGPA, &s.SGPARank); err != nil {
			return nil, err
		}
		standings = append(standings, s)
	}
	return standings, rows.Err()
}
