package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind string

const (
	// KindValidation indicates the request was well-formed but not acceptable.
	KindValidation Kind = "VALIDATION"

	// KindNotFound indicates a resource was not found.
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict indicates a conflict with existing data.
	KindConflict Kind = "CONFLICT"

	// KindForbidden indicates the caller may not act on the resource.
	KindForbidden Kind = "FORBIDDEN"

	// KindUnauthorized indicates a missing or invalid identity.
	KindUnauthorized Kind = "UNAUTHORIZED"

	// KindInternal indicates an infrastructure failure (storage, cache).
	KindInternal Kind = "INTERNAL"
)

// AppError is an error with a kind and a stable machine-readable code.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError with the same code, so sentinels survive wrapping.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// New creates an AppError without a cause.
func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) *AppError {
	return New(KindValidation, "VALIDATION", message)
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(message string) *AppError {
	return New(KindNotFound, "NOT_FOUND", message)
}

// NewInternalError wraps an infrastructure failure.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Code: "INTERNAL", Message: message, Err: err}
}

// Wrap returns err unchanged when it already carries an AppError, and
// otherwise wraps it as an internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return NewInternalError(message, err)
}

// KindOf reports the kind of err; anything that is not an AppError is internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code the API answers with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
