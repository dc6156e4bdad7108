package handler

import (
	"errors"
	"net/http"

	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/repository"
	"github.com/acadra/gradebook-backend/internal/response"
	"github.com/acadra/gradebook-backend/internal/service"
	"github.com/acadra/gradebook-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Create godoc
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		RollNumber: req.RollNumber,
		Name:       req.Name,
		Email:      req.Email,
	}
	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		if errors.Is(err, repository.ErrDuplicateRoll) {
			response.Fail(c, http.StatusConflict, response.ErrDuplicateRoll)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// List godoc
// GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// Get godoc
// GET /api/v1/students/:roll
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.studentService.GetByRoll(c.Request.Context(), c.Param("roll"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if student.Semesters == nil {
		student.Semesters = []model.SemesterRecord{}
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}
