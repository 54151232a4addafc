package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Reference-graph errors
	ErrCycleDetected = errors.New("institution parent chain does not terminate")

	// Transport errors
	ErrTransport = errors.New("ledger transport failure")
)

// ErrInvalidDate flags malformed date input; it matches ErrValidation.
var ErrInvalidDate = &CustomError{Err: ErrValidation, Message: "invalid date format, expected YYYY-MM-DD"}

// Diploma errors. Each chains to a base sentinel so callers can match on
// either the specific or the generic condition.
var (
	ErrDiplomaNotFound      = &CustomError{Err: ErrNotFound, Message: "diploma not found"}
	ErrDiplomaAlreadyExists = &CustomError{Err: ErrAlreadyExists, Message: "diploma already exists"}
)

// Reference-store errors
var (
	ErrStudentNotFound     = &CustomError{Err: ErrNotFound, Message: "student not found"}
	ErrInstitutionNotFound = &CustomError{Err: ErrNotFound, Message: "institution not found"}
	ErrCourseNotFound      = &CustomError{Err: ErrNotFound, Message: "course not found"}
	ErrDefenceNotFound     = &CustomError{Err: ErrNotFound, Message: "thesis defence not found"}
)

// NewNotFoundError creates a new custom error for a missing resource with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewAlreadyExistsError creates a new custom error for a duplicate resource with a message
func NewAlreadyExistsError(message string) error {
	return &CustomError{
		Err:     ErrAlreadyExists,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidation,
		Message: message,
	}
}

// NewTransportError creates a new custom error for a failed ledger round trip.
// The transaction name is kept so callers can tell which call failed.
func NewTransportError(txName string, cause error) error {
	return &CustomError{
		Err:     ErrTransport,
		Message: "transaction " + txName + " failed: " + cause.Error(),
		Details: map[string]interface{}{"transaction": txName},
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
