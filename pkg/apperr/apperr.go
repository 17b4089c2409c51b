package apperr

import (
	"errors"
	"net/http"
)

// Code is a stable, user-visible error code
type Code string

const (
	CodeValidation    Code = "VALIDATION_FAILED"
	CodeNotAuthorized Code = "NOT_AUTHORIZED"
	CodeForbidden     Code = "FORBIDDEN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeUpstream      Code = "UPSTREAM_UNAVAILABLE"
	CodeInternal      Code = "INTERNAL"
)

// Error pairs a stable code/message with an HTTP status class. The wrapped
// cause is for logs only and never serialized to a client.
type Error struct {
	Code    Code
	Message string
	Status  int
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return string(e.Code) + ": " + e.cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches errors by code so sentinel comparisons work through wrapping
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

func NotAuthorized() *Error {
	return &Error{Code: CodeNotAuthorized, Message: "not authorized", Status: http.StatusUnauthorized}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message, Status: http.StatusForbidden}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message, Status: http.StatusConflict}
}

func Upstream(cause error) *Error {
	return &Error{Code: CodeUpstream, Message: "upstream provider unavailable", Status: http.StatusBadGateway, cause: cause}
}

func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "internal error", Status: http.StatusInternalServerError, cause: cause}
}

// Is reports whether err carries the given code
func Is(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}

// FromError extracts an *Error, mapping unknown errors to Internal
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
