package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeTableNotFound   ErrorCode = "TABLE_NOT_FOUND"
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrCodeValidationError ErrorCode = "VALIDATION_ERROR"
	ErrCodeForbiddenIP     ErrorCode = "FORBIDDEN_IP"

	// Procedure-reported failures (semantic, not transport)
	ErrCodeBusinessFailure ErrorCode = "BUSINESS_FAILURE"

	// Infrastructure errors
	ErrCodeTransportError   ErrorCode = "TRANSPORT_ERROR"
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	ErrCodeProcessError     ErrorCode = "PROCESS_ERROR"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with code and context
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	Status  int // HTTP status code
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
		Status:  getHTTPStatus(code),
	}
}

// WrapError wraps an existing error with an error code and message
func WrapError(code ErrorCode, message string, err error) *AppError {
	return NewAppError(code, message, err)
}

// getHTTPStatus maps error codes to HTTP status codes
func getHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound, ErrCodeTableNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput, ErrCodeValidationError:
		return http.StatusBadRequest
	case ErrCodeForbiddenIP:
		return http.StatusForbidden
	case ErrCodeBusinessFailure:
		return http.StatusConflict
	case ErrCodeTransportError, ErrCodeConnectionFailed, ErrCodeProcessError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeNotFound || appErr.Code == ErrCodeTableNotFound
	}
	return false
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeValidationError || appErr.Code == ErrCodeInvalidInput
	}
	return false
}

// IsBusinessFailure checks if the error is a procedure-reported business failure
func IsBusinessFailure(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeBusinessFailure
	}
	return false
}
