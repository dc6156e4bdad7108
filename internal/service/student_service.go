package service

import (
	"context"
	"errors"

	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/repository"
)

// Sentinel errors surfaced by the services. Handlers map these to response
// codes; repository errors never leak past this layer unnamed.
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrCatalogNotFound  = errors.New("course catalog not found")
	ErrSemesterNotFound = errors.New("semester record not found")
)

// StudentService handles student identity and listing logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// Create registers a new student with an empty semester history.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// List retrieves the summary projection of all students.
func (s *StudentService) List(ctx context.Context) ([]model.StudentSummary, error) {
	students, err := s.studentRepo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.StudentSummary{}
	}
	return students, nil
}

// GetByRoll retrieves a student's full academic record.
func (s *StudentService) GetByRoll(ctx context.Context, roll string) (*model.Student, error) {
	student, err := s.studentRepo.GetByRoll(ctx, roll)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}
