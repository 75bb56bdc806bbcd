package errors

import (
	"net/http"

	"titlecheck/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// Validation errors
	ErrSignupFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Username, email, and password are required.",
	)

	ErrLoginFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Email and password are required.",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request body",
	)

	ErrTitleRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Title is required",
	)

	// Conflicts are reported as 400 to keep the public contract of the signup endpoint.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"Email is already registered.",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username is already taken.",
	)

	// Authentication errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials.",
	)

	// Scorer errors
	ErrScorerExecution = NewBaseError(
		http.StatusInternalServerError,
		"SCORER_EXECUTION_FAILED",
		"An error occurred while processing the title",
	)

	ErrScorerOutput = NewBaseError(
		http.StatusInternalServerError,
		"SCORER_OUTPUT_INVALID",
		"An error occurred while processing the title",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
	)
)
