package riot

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// errorEnvelope is the Riot error body shape:
// {"status": {"message": "...", "status_code": ...}}.
type errorEnvelope struct {
	Status struct {
		Message    string `json:"message"`
		StatusCode int    `json:"status_code"`
	} `json:"status"`
}

// Normalize converts a raw transport outcome into exactly one Result. It
// never fails: malformed bodies and headers are classified, not propagated.
func Normalize[T any](status int, body []byte, header http.Header) Result[T] {
	if status >= 200 && status < 300 {
		var value T
		if err := json.Unmarshal(body, &value); err != nil {
			return Failure[T](&APIError{
				StatusCode: StatusDecodeFailure,
				Message:    fmt.Sprintf("decode response: %v", err),
			})
		}
		return Success(value)
	}

	apiErr := &APIError{StatusCode: status, Message: statusMessage(status)}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if msg := strings.TrimSpace(envelope.Status.Message); msg != "" {
			apiErr.Message = msg
		}
	}

	if status == http.StatusTooManyRequests && header != nil {
		if secs, err := strconv.Atoi(strings.TrimSpace(header.Get("Retry-After"))); err == nil && secs >= 0 {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	return Failure[T](apiErr)
}

// TransportFailure converts a transport-level fault (connection, timeout,
// DNS, TLS, cancellation) into a failed Result. This is the only boundary
// where such faults are caught.
func TransportFailure[T any](err error) Result[T] {
	msg := "transport failure"
	if err != nil {
		msg = fmt.Sprintf("transport failure: %v", err)
	}
	return Failure[T](&APIError{StatusCode: StatusTransportFailure, Message: msg})
}

// statusMessage returns the generic description for an error status class,
// used when the response body carries no message of its own.
func statusMessage(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "not found"
	case status == http.StatusTooManyRequests:
		return "rate limited"
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status == http.StatusForbidden:
		return "forbidden"
	case status >= 500:
		return "server error"
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}
