package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Remote collaborator errors
	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"Remote service unreachable",
		"",
	)

	ErrRemoteValidation = NewBaseError(
		http.StatusUnprocessableEntity,
		"REMOTE_VALIDATION_ERROR",
		"Remote service rejected the request",
		"",
	)

	// Authentication-related errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Sign in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// Cart-related errors
	ErrCartUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CART_UNAVAILABLE",
		"Cart is not initialized",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusConflict,
		"CART_EMPTY",
		"Cart has no items",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// RemoteCallError represents a failed request to a remote platform, implementing the AppError interface
type RemoteCallError struct {
	err     error
	service string
	details string
}

// NewNetworkError creates an error for a request that never produced a usable answer
func NewNetworkError(err error, service, details string) AppError {
	return &RemoteCallError{
		err:     err,
		service: service,
		details: details,
	}
}

// Error implements the error interface
func (e *RemoteCallError) Error() string {
	return errors.Wrapf(e.err, "%s request failed", e.service).Error()
}

// Unwrap exposes the transport error
func (e *RemoteCallError) Unwrap() error {
	return e.err
}

// Is lets callers match RemoteCallError against ErrNetwork
func (e *RemoteCallError) Is(target error) bool {
	return target == ErrNetwork
}

// HTTPCode returns the HTTP status code
func (e *RemoteCallError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteCallError) ErrorCode() string {
	return ErrNetwork.ErrorCode()
}

// Message returns the user-friendly error message
func (e *RemoteCallError) Message() string {
	return ErrNetwork.Message()
}

// Details returns detailed error information
func (e *RemoteCallError) Details() string {
	return e.details
}

// Service names the remote platform that failed
func (e *RemoteCallError) Service() string {
	return e.service
}

// NewRemoteValidationError carries the first structured error message returned by a remote platform
func NewRemoteValidationError(message string) *BaseError {
	return ErrRemoteValidation.WithDetails(message)
}
