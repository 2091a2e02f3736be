package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Identity and assignment errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrMenteeNotFound     = errors.New("mentee not found")
	ErrMentorNotFound     = errors.New("mentor not found")
	ErrAlreadyAssigned    = errors.New("mentee already has an assigned mentor")
	ErrNotAssigned        = errors.New("mentee has no assigned mentor")
)

// Issue lifecycle errors
var (
	ErrIssueNotFound     = errors.New("issue not found")
	ErrIssueClosed       = errors.New("issue is closed and no longer accepts comments")
	ErrInvalidTransition = errors.New("illegal status transition")
)

// Achievement and academic record errors
var (
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrRecordNotFound      = errors.New("academic record not found")
)

// NewNotFoundError creates a custom error for an absent resource with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a custom error for business-rule conflicts with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a custom error for ownership/role mismatches with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a custom error for malformed input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError carries an underlying sentinel together with request-specific context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
