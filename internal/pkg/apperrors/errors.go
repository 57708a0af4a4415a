package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies an application error for callers and for HTTP mapping.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindInvalidCode  Kind = "invalid_code"
	KindRateLimited  Kind = "rate_limited"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindNetwork      Kind = "network"
	KindTimeout      Kind = "timeout"
)

// Error is a typed application error. Business-rule failures carry a
// user-facing message; transport failures wrap the underlying cause.
type Error struct {
	Kind       Kind
	Message    string
	RetryAfter time.Duration // set for rate-limited errors
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation creates a bad-input error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a duplicate-resource error.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidCode creates an OTP mismatch/expired/consumed error.
func InvalidCode(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidCode, Message: fmt.Sprintf(format, args...)}
}

// RateLimited creates a cooldown error carrying the remaining wait so the
// caller can display a countdown.
func RateLimited(retryAfter time.Duration) *Error {
	return &Error{
		Kind:       KindRateLimited,
		Message:    fmt.Sprintf("please wait %d seconds before requesting a new code", int(retryAfter.Seconds())),
		RetryAfter: retryAfter,
	}
}

// Unauthorized creates an invalid-credential error.
func Unauthorized(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a missing-resource error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Transport classifies an infrastructure failure crossing the facade
// boundary: typed application errors pass through unchanged, deadline
// expiry becomes a timeout, and anything else is collapsed into a single
// network error so backend-specific failure shapes do not leak out.
func Transport(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
	}
	return &Error{Kind: KindNetwork, Message: "backend request failed", Err: err}
}

// KindOf returns the kind of err, or KindNetwork for untyped errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindNetwork
}

// Is reports whether err is an application error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPStatus maps an error to the status code handlers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidCode:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for err. Untyped errors get a
// generic message so internals are not exposed.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
