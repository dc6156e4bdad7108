package handler

import (
	"errors"
	"net/http"

	"github.com/acadra/gradebook-backend/internal/response"
	"github.com/acadra/gradebook-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ImportHandler handles bulk result uploads.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportResults godoc
// POST /api/v1/imports/results
// Accepts an .xlsx or .csv file: one row per student, one mark column per
// course code of the batch's (semester, year) catalog.
func (h *ImportHandler) ImportResults(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	report, err := h.importService.ImportResults(c.Request.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		case errors.Is(err, service.ErrBadBatchContext):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"detail": err.Error()})
		case errors.Is(err, service.ErrCatalogNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrCatalogNotFound)
		default:
			// A mid-batch failure aborts the import; rows processed before it
			// are already persisted.
			response.FailWithFields(c, http.StatusInternalServerError, response.ErrImportFailed,
				map[string]string{"detail": err.Error()})
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}
