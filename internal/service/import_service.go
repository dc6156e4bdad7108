package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/acadra/gradebook-backend/internal/config"
	"github.com/acadra/gradebook-backend/internal/grading"
	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Sentinel errors for import uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// ImportReport summarizes a completed bulk import.
type ImportReport struct {
	Semester        int `json:"semester"`
	Year            int `json:"year"`
	RowsProcessed   int `json:"rows_processed"`
	StudentsCreated int `json:"students_created"`
	StudentsUpdated int `json:"students_updated"`
}

// ImportService ingests tabular result files: one row per student, one mark
// column per course code of the batch's catalog.
type ImportService struct {
	studentRepo *repository.StudentRepository
	catalogRepo *repository.CatalogRepository
	results     *ResultService
	ranking     *RankingService
	cfg         *config.Config
	log         zerolog.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(
	studentRepo *repository.StudentRepository,
	catalogRepo *repository.CatalogRepository,
	results *ResultService,
	ranking *RankingService,
	cfg *config.Config,
	log zerolog.Logger,
) *ImportService {
	return &ImportService{
		studentRepo: studentRepo,
		catalogRepo: catalogRepo,
		results:     results,
		ranking:     ranking,
		cfg:         cfg,
		log:         log.With().Str("component", "import_service").Logger(),
	}
}

// ImportResults stages the uploaded file, processes it row by row through
// the grade pipeline, then runs one SGPA pass for the batch cohort and one
// global CGPA pass.
//
// The staged file is removed on every path, success or failure. Rows are
// persisted one at a time: a failing row aborts the import and earlier rows
// stay persisted.
func (s *ImportService) ImportResults(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*ImportReport, error) {
	if header.Size > s.cfg.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".csv" {
		return nil, ErrUnsupportedFileType
	}

	path, err := s.stage(file, ext)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("Staged import file not removed")
		}
	}()

	records, err := s.readTable(path, ext)
	if err != nil {
		return nil, err
	}
	return s.process(ctx, rowMaps(records))
}

// stage copies the upload into UploadDir under a UUID name.
func (s *ImportService) stage(file multipart.File, ext string) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.cfg.UploadDir, uuid.New().String()+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("stage upload: %w", err)
	}
	return path, nil
}

// readTable reads the staged file into raw records, header row first.
func (s *ImportService) readTable(path, ext string) ([][]string, error) {
	if ext == ".csv" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1 // Rows may omit trailing mark columns.
		return reader.ReadAll()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("spreadsheet contains no sheets")
	}
	return f.GetRows(sheet)
}

func (s *ImportService) process(ctx context.Context, rows []tableRow) (*ImportReport, error) {
	semester, year, err := batchContext(rows)
	if err != nil {
		return nil, err
	}

	// The catalog must exist before any row is touched.
	catalog, err := s.catalogRepo.GetByKey(ctx, semester, year)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}

	report := &ImportReport{Semester: semester, Year: year}

	for i, row := range rows {
		created, err := s.processRow(ctx, row, catalog)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		report.RowsProcessed++
		if created {
			report.StudentsCreated++
		} else {
			report.StudentsUpdated++
		}
	}

	if err := s.ranking.RankSGPA(ctx, semester, year); err != nil {
		return nil, err
	}
	if err := s.ranking.RankCGPA(ctx); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("semester", semester).
		Int("year", year).
		Int("rows", report.RowsProcessed).
		Int("created", report.StudentsCreated).
		Msg("Import complete")
	return report, nil
}

// processRow runs the pipeline for one student row without the ranking
// passes, which run once per batch. One mark per catalog course; missing or
// unparseable columns grade as F.
func (s *ImportService) processRow(ctx context.Context, row tableRow, catalog *model.CourseCatalog) (created bool, err error) {
	roll := row["roll_number"]
	if roll == "" {
		return false, errors.New("missing roll_number")
	}

	student, err := s.studentRepo.GetByRoll(ctx, roll)
	if errors.Is(err, repository.ErrNotFound) {
		student = &model.Student{
			RollNumber: roll,
			Name:       row["name"],
			Email:      row["email"],
		}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			return false, err
		}
		created = true
	} else if err != nil {
		return false, err
	}

	pairs := make([]grading.CourseMark, 0, len(catalog.Courses))
	for _, course := range catalog.Courses {
		pairs = append(pairs, grading.CourseMark{
			CourseCode: course.CourseCode,
			Marks:      parseMark(row[course.CourseCode]),
		})
	}

	if _, err := s.results.persistComputed(ctx, student, pairs, catalog); err != nil {
		return created, err
	}
	return created, nil
}
