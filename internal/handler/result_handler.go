package handler

import (
	"errors"
	"net/http"

	"github.com/acadra/gradebook-backend/internal/grading"
	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/response"
	"github.com/acadra/gradebook-backend/internal/service"
	"github.com/acadra/gradebook-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	resultService  *service.ResultService
	rankingService *service.RankingService
}

func NewResultHandler(resultService *service.ResultService, rankingService *service.RankingService) *ResultHandler {
	return &ResultHandler{
		resultService:  resultService,
		rankingService: rankingService,
	}
}

// SubmitMarks godoc
// POST /api/v1/students/:roll/results
// Runs the full pipeline: grading, CGPA update, cohort and global ranking.
func (h *ResultHandler) SubmitMarks(c *gin.Context) {
	var req model.SubmitMarksRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	rec, err := h.resultService.SubmitMarks(c.Request.Context(), c.Param("roll"), req.Semester, req.Year, req.Marks)
	if err != nil {
		failSubmit(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"result": rec})
}

// failSubmit maps pipeline errors onto response codes. Computation errors
// carry their own code instead of collapsing into a generic 500.
func failSubmit(c *gin.Context, err error) {
	var unknownCourse *grading.UnknownCourseError

	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
	case errors.Is(err, service.ErrCatalogNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrCatalogNotFound)
	case errors.As(err, &unknownCourse):
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrUnknownCourse,
			map[string]string{"course_code": unknownCourse.Code})
	case errors.Is(err, grading.ErrNoCredits):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrEmptyCourseList)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// GetMarks godoc
// GET /api/v1/students/:roll/results?semester=&year=
func (h *ResultHandler) GetMarks(c *gin.Context) {
	semester, year, ok := semesterYearQuery(c)
	if !ok {
		return
	}

	rec, err := h.resultService.GetMarks(c.Request.Context(), c.Param("roll"), semester, year)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		case errors.Is(err, service.ErrSemesterNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrSemesterNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": rec})
}

// GetRanks godoc
// GET /api/v1/students/:roll/ranks
func (h *ResultHandler) GetRanks(c *gin.Context) {
	ranks, err := h.resultService.GetRanks(c.Request.Context(), c.Param("roll"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ranks": ranks})
}

// TopCGPA godoc
// GET /api/v1/leaderboard/cgpa
func (h *ResultHandler) TopCGPA(c *gin.Context) {
	top, err := h.rankingService.TopByCGPA(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leaderboard": top})
}

// TopSGPA godoc
// GET /api/v1/leaderboard/sgpa
func (h *ResultHandler) TopSGPA(c *gin.Context) {
	top, err := h.rankingService.TopBySGPA(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leaderboard": top})
}
