package riot

import (
	"fmt"
	"net/http"
	"time"
)

// Package riot normalizes Riot API transport outcomes into a uniform
// two-variant result type. Every endpooint call yields exactly one Result;
// failures are values, never panics.

// Sentinel status codes for failures that carry no real HTTP status.
const (
	StatusDecodeFailure    = 0
	StatusTransportFailure = -1
)

// APIError describes a failed call to the Riot API. StatusCode is the HTTP
// status for remote errors, or one of the sentinel values above.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`

	// RetryAfter is populated from the Retry-After header on 429 responses,
	// zero otherwise.
	RetryAfter time.Duration `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api error %d: %s", e.StatusCode, e.Message)
}

// RateLimited reports whether the caller exceeded an API quota.
func (e *APIError) RateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }

// KeyRejected reports whether the API refused the credential, which usually
// means an expired or invalid key.
func (e *APIError) KeyRejected() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DecodeFailure reports whether a success-status body could not be decoded.
func (e *APIError) DecodeFailure() bool { return e.StatusCode == StatusDecodeFailure }

// TransportFailure reports whether the request never completed at the HTTP layer.
func (e *APIError) TransportFailure() bool { return e.StatusCode == StatusTransportFailure }

// Result is the outcome of a single endpoint call: either a decoded payload
// or an APIError. The zero Result is a failure with an empty error.
type Result[T any] struct {
	value T
	err   *APIError
}

// Success wraps a decoded payload.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps an APIError.
func Failure[T any](err *APIError) Result[T] {
	if err == nil {
		err = &APIError{StatusCode: StatusDecodeFailure, Message: "unknown failure"}
	}
	return Result[T]{err: err}
}

// Ok reports whether the call produced a payload. It is the single branch
// point callers need; no variant inspection required.
func (r Result[T]) Ok() bool { return r.err == nil }

// Value returns the decoded payload. For failed results it returns the zero
// value of T.
func (r Result[T]) Value() T { return r.value }

// Err returns the error for failed results, nil otherwise.
func (r Result[T]) Err() *APIError { return r.err }

// String renders the payload (or the error) with the default separator.
func (r Result[T]) String() string {
	return r.Render(DefaultSeparator)
}

// Render renders the payload field-by-field in declaration order using sep as
// the indentation unit. Errors render as their status code and message.
func (r Result[T]) Render(sep string) string {
	if r.err != nil {
		return fmt.Sprintf("APIError(\n%sstatus_code = %d,\n%smessage = %s\n)", sep, r.err.StatusCode, sep, r.err.Message)
	}
	return Render(r.value, sep)
}
