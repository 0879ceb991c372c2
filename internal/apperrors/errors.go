package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDuplicate is wrapped by repositories when a write hits a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate key")

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindRateLimited
)

// String returns a short machine readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// HTTPStatus maps the kind to a response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error with a user facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a new error of the given kind.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a user-correctable input error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Unauthenticated is returned when there is no valid session.
func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

// Forbidden is returned when the session lacks the required role.
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// NotFound is returned for absent resources and for resources the caller does not own.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Conflict is returned for uniqueness violations.
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Internal wraps a datastore or infrastructure failure.
func Internal(err error) *Error {
	return Wrap(err, KindInternal, "Internal server error")
}

// KindOf returns the kind of err, KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// PublicMessage returns the message safe to show to a client.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Internal server error"
}
