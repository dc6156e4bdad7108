package service

import (
	"context"
	"errors"

	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/repository"
	"github.com/rs/zerolog"
)

// CatalogService handles course catalog logic.
type CatalogService struct {
	catalogRepo *repository.CatalogRepository
	log         zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo *repository.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		log:         log.With().Str("component", "catalog_service").Logger(),
	}
}

// AddCourses appends courses to the catalog for (semester, year), creating
// the catalog on the first submission for that key.
func (s *CatalogService) AddCourses(ctx context.Context, semester, year int, inputs []model.CourseInput) (*model.CourseCatalog, error) {
	catalog, err := s.catalogRepo.GetByKey(ctx, semester, year)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		catalog = &model.CourseCatalog{Semester: semester, Year: year}
		if err := s.catalogRepo.Create(ctx, catalog); err != nil {
			return nil, err
		}
		s.log.Info().Int("semester", semester).Int("year", year).Msg("Catalog created")
	}

	courses := make([]model.Course, len(inputs))
	for i, in := range inputs {
		courses[i] = model.Course{
			CourseCode:  in.CourseCode,
			CourseTitle: in.CourseTitle,
			Credits:     in.Credits,
		}
	}

	if err := s.catalogRepo.AppendCourses(ctx, catalog.ID, courses); err != nil {
		return nil, err
	}
	catalog.Courses = append(catalog.Courses, courses...)
	return catalog, nil
}

// GetByKey retrieves the catalog for (semester, year).
func (s *CatalogService) GetByKey(ctx context.Context, semester, year int) (*model.CourseCatalog, error) {
	catalog, err := s.catalogRepo.GetByKey(ctx, semester, year)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}
	return catalog, nil
}
