package errors

import "fmt"

// Error codes
const (
	ErrCodeMissingColumn    = "MISSING_COLUMN"
	ErrCodeInsufficientData = "INSUFFICIENT_DATA"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeUpstream         = "UPSTREAM_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeBadRequest       = "BAD_REQUEST"
)

// AppError represents an application error with an HTTP status and error code.
// Expected "not enough data" conditions in the analysis engines never surface
// as AppErrors; they degrade to empty results. AppError is reserved for
// upstream failures and malformed requests.
type AppError struct {
	Code    string // Error code (e.g., "MISSING_COLUMN")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewMissingColumnError creates a MISSING_COLUMN error for an absent subject column.
func NewMissingColumnError(column string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingColumn,
		Message: fmt.Sprintf("column not found: %s", column),
		Status:  404,
	}
}

// NewInsufficientDataError creates an INSUFFICIENT_DATA error.
func NewInsufficientDataError(subject string, need, have int) *AppError {
	return &AppError{
		Code:    ErrCodeInsufficientData,
		Message: fmt.Sprintf("not enough observations for %s: need %d, have %d", subject, need, have),
		Status:  422,
	}
}

// NewValidationError creates a VALIDATION_ERROR.
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewUpstreamError creates an UPSTREAM_ERROR for loader failures.
func NewUpstreamError(source string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeUpstream,
		Message: fmt.Sprintf("upstream source failed: %s", source),
		Status:  502,
		Err:     err,
	}
}

// NewInternalError creates an INTERNAL_ERROR.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a BAD_REQUEST error.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}
