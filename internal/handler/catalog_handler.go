package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/repository"
	"github.com/acadra/gradebook-backend/internal/response"
	"github.com/acadra/gradebook-backend/internal/service"
	"github.com/acadra/gradebook-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateCourses godoc
// POST /api/v1/courses
// Creates the (semester, year) catalog on first submission, appends afterwards.
func (h *CatalogHandler) CreateCourses(c *gin.Context) {
	var req model.CreateCoursesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	catalog, err := h.catalogService.AddCourses(c.Request.Context(), req.Semester, req.Year, req.Courses)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCourse) {
			response.Fail(c, http.StatusConflict, response.ErrDuplicateCourse)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"catalog": catalog})
}

// GetCourses godoc
// GET /api/v1/courses?semester=&year=
func (h *CatalogHandler) GetCourses(c *gin.Context) {
	semester, year, ok := semesterYearQuery(c)
	if !ok {
		return
	}

	catalog, err := h.catalogService.GetByKey(c.Request.Context(), semester, year)
	if err != nil {
		if errors.Is(err, service.ErrCatalogNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCatalogNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if catalog.Courses == nil {
		catalog.Courses = []model.Course{}
	}
	response.Success(c, http.StatusOK, gin.H{"catalog": catalog})
}

// semesterYearQuery parses the mandatory integer semester/year query
// parameters, failing the request with 400 on non-integer input.
func semesterYearQuery(c *gin.Context) (semester, year int, ok bool) {
	semester, err := strconv.Atoi(c.Query("semester"))
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery,
			map[string]string{"semester": "must be an integer"})
		return 0, 0, false
	}
	year, err = strconv.Atoi(c.Query("year"))
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery,
			map[string]string{"year": "must be an integer"})
		return 0, 0, false
	}
	return semester, year, true
}
