package repository

import (
	"context"
	"errors"

	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateCourse = errors.New("course code already exists in this catalog")

// CatalogRepository handles course catalog data access.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// GetByKey retrieves the catalog for (semester, year) with its courses in
// submission order.
func (r *CatalogRepository) GetByKey(ctx context.Context, semester, year int) (*model.CourseCatalog, error) {
	c := &model.CourseCatalog{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, semester, year, created_at, updated_at
		 FROM course_catalogs WHERE semester = $1 AND year = $2`, semester, year,
	).Scan(&c.ID, &c.Semester, &c.Year, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, catalog_id, course_code, course_title, credits, created_at
		 FROM courses WHERE catalog_id = $1 ORDER BY id`, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var course model.Course
		if err := rows.Scan(&course.ID, &course.CatalogID, &course.CourseCode, &course.CourseTitle, &course.Credits, &course.CreatedAt); err != nil {
			return nil, err
		}
		c.Courses = append(c.Courses, course)
	}
	return c, rows.Err()
}

// Create inserts an empty catalog for (semester, year).
func (r *CatalogRepository) Create(ctx context.Context, c *model.CourseCatalog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO course_catalogs (semester, year)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		c.Semester, c.Year,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// AppendCourses adds courses to an existing catalog. A duplicate course code
// within the catalog aborts the whole append.
func (r *CatalogRepository) AppendCourses(ctx context.Context, catalogID int, courses []model.Course) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range courses {
		course := &courses[i]
		err := tx.QueryRow(ctx,
			`INSERT INTO courses (catalog_id, course_code, course_title, credits)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, created_at`,
			catalogID, course.CourseCode, course.CourseTitle, course.Credits,
		).Scan(&course.ID, &course.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrDuplicateCourse
			}
			return err
		}
		course.CatalogID = catalogID
	}

	if _, err := tx.Exec(ctx,
		`UPDATE course_catalogs SET updated_at = CURRENT_TIMESTAMP WHERE id = $1`, catalogID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
