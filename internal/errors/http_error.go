package errors

import (
	stderrors "errors"
	"net/http"
)

// Error kinds surfaced by the store and services. Callers match them with errors.Is.
var (
	ErrNotFound          = stderrors.New("not found")
	ErrValidation        = stderrors.New("validation failed")
	ErrExternalService   = stderrors.New("Failed to find parking spots. Please try again.")
	ErrSearchTimeout     = stderrors.New("nearby search timed out")
	ErrIllegalTransition = stderrors.New("illegal status transition")
	ErrForbidden         = stderrors.New("forbidden")
	ErrUnauthorized      = stderrors.New("unauthorized")
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// FromError converts any error into an HTTPError using StatusFor.
func FromError(err error) *HTTPError {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr
	}
	code := StatusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	if stderrors.Is(err, ErrExternalService) {
		msg = ErrExternalService.Error()
	}
	return NewHTTPError(code, msg)
}

// StatusFor maps an error kind to the HTTP status code it is reported with.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrIllegalTransition):
		return http.StatusConflict
	case stderrors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case stderrors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case stderrors.Is(err, ErrSearchTimeout):
		return http.StatusGatewayTimeout
	case stderrors.Is(err, ErrExternalService):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Helper for common errors
var (
	ErrBadRequest = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
)
