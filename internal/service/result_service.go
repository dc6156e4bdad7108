package service

import (
	"context"
	"errors"

	"github.com/acadra/gradebook-backend/internal/grading"
	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ResultService drives the grade computation pipeline: marks in, computed
// semester record out, CGPA recomputed, ranking passes triggered.
type ResultService struct {
	studentRepo *repository.StudentRepository
	catalogRepo *repository.CatalogRepository
	ranking     *RankingService
	log         zerolog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(
	studentRepo *repository.StudentRepository,
	catalogRepo *repository.CatalogRepository,
	ranking *RankingService,
	log zerolog.Logger,
) *ResultService {
	return &ResultService{
		studentRepo: studentRepo,
		catalogRepo: catalogRepo,
		ranking:     ranking,
		log:         log.With().Str("component", "result_service").Logger(),
	}
}

// SubmitMarks runs the full pipeline for one student and one (semester, year):
// grade computation against the catalog, semester replace-or-append, CGPA
// recomputation, then an SGPA pass for the cohort and a global CGPA pass.
// Nothing is persisted when computation fails.
func (s *ResultService) SubmitMarks(ctx context.Context, roll string, semester, year int, marks map[string]float64) (*model.SemesterRecord, error) {
	student, err := s.studentRepo.GetByRoll(ctx, roll)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	catalog, err := s.catalogRepo.GetByKey(ctx, semester, year)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}

	pairs, err := grading.OrderedMarks(catalog, marks)
	if err != nil {
		return nil, err
	}

	rec, err := s.persistComputed(ctx, student, pairs, catalog)
	if err != nil {
		return nil, err
	}

	if err := s.ranking.RankSGPA(ctx, semester, year); err != nil {
		return nil, err
	}
	if err := s.ranking.RankCGPA(ctx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("roll", roll).
		Int("semester", semester).
		Int("year", year).
		Float64("sgpa", rec.SGPA).
		Msg("Marks submitted")
	return rec, nil
}

// persistComputed computes the semester record and stores it together with
// the recomputed CGPA. Shared with the bulk importer, which defers ranking
// until the whole batch is done.
func (s *ResultService) persistComputed(ctx context.Context, student *model.Student, pairs []grading.CourseMark, catalog *model.CourseCatalog) (*model.SemesterRecord, error) {
	rec, err := grading.ComputeSemester(catalog.Semester, catalog.Year, pairs, catalog)
	if err != nil {
		return nil, err
	}

	cgpa, err := grading.CGPA(mergeSemester(student.Semesters, rec))
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.ReplaceSemester(ctx, student.ID, rec, cgpa); err != nil {
		return nil, err
	}
	return rec, nil
}

// mergeSemester returns the semester set as it will look after storing rec:
// the record for the same (semester, year) replaced in place, or rec appended.
func mergeSemester(existing []model.SemesterRecord, rec *model.SemesterRecord) []model.SemesterRecord {
	merged := make([]model.SemesterRecord, len(existing))
	copy(merged, existing)
	for i := range merged {
		if merged[i].Semester == rec.Semester && merged[i].Year == rec.Year {
			merged[i] = *rec
			return merged
		}
	}
	return append(merged, *rec)
}

// GetMarks returns the stored grade records and SGPA for one
// (roll, semester, year).
func (s *ResultService) GetMarks(ctx context.Context, roll string, semester, year int) (*model.SemesterRecord, error) {
	student, err := s.studentRepo.GetByRoll(ctx, roll)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	rec := student.FindSemester(semester, year)
	if rec == nil {
		return nil, ErrSemesterNotFound
	}
	return rec, nil
}

// GetRanks returns the rank view of one student: global CGPA rank plus the
// SGPA rank of every recorded semester.
func (s *ResultService) GetRanks(ctx context.Context, roll string) (*model.StudentRanks, error) {
	student, err := s.studentRepo.GetByRoll(ctx, roll)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	ranks := &model.StudentRanks{
		RollNumber: student.RollNumber,
		Name:       student.Name,
		CGPA:       student.CGPA,
		CGPARank:   student.CGPARank,
		Semesters:  make([]model.SemesterRanks, 0, len(student.Semesters)),
	}
	for _, rec := range student.Semesters {
		ranks.Semesters = append(ranks.Semesters, model.SemesterRanks{
			Semester: rec.Semester,
			Year:     rec.Year,
			SGPA:     rec.SGPA,
			SGPARank: rec.SGPARank,
		})
	}
	return ranks, nil
}
