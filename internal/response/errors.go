package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation   ErrCode = "VALIDATION_ERROR"
	ErrInvalidQuery ErrCode = "INVALID_QUERY"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrStudentNotFound  ErrCode = "STUDENT_NOT_FOUND"
	ErrCatalogNotFound  ErrCode = "CATALOG_NOT_FOUND"
	ErrSemesterNotFound ErrCode = "SEMESTER_NOT_FOUND"
	ErrDuplicateRoll    ErrCode = "DUPLICATE_ROLL_NUMBER"
	ErrDuplicateCourse  ErrCode = "DUPLICATE_COURSE_CODE"

	// ─── Computation ───────────────────────────────────────────────────
	ErrUnknownCourse   ErrCode = "UNKNOWN_COURSE"
	ErrEmptyCourseList ErrCode = "EMPTY_COURSE_LIST"

	// ─── Bulk import ───────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"
	ErrImportFailed    ErrCode = "IMPORT_FAILED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidQuery:
		return "Query parameters are invalid."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrStudentNotFound:
		return "Student not found."
	case ErrCatalogNotFound:
		return "No course catalog exists for this semester and year."
	case ErrSemesterNotFound:
		return "No results recorded for this semester and year."
	case ErrDuplicateRoll:
		return "A student with this roll number already exists."
	case ErrDuplicateCourse:
		return "A course with this code already exists in the catalog."

	// ─── Computation ───────────────────────────────────────────────────
	case ErrUnknownCourse:
		return "A submitted course code is not part of the catalog."
	case ErrEmptyCourseList:
		return "The submission contains no courses to grade."

	// ─── Bulk import ───────────────────────────────────────────────────
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type. Upload .xlsx or .csv."
	case ErrFileTooLarge:
		return "The uploaded file exceeds the size limit."
	case ErrImportFailed:
		return "The import aborted. Rows processed before the failure were kept."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
