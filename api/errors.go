package api

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is wrapped by a NetworkError when the explorer answers
// with a body that is not a JSON envelope.
var ErrMalformedResponse = errors.New("malformed response")

// ValidationError reports parameters that the explorer would reject. It is
// returned before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NetworkError is returned when no usable envelope could be obtained: the
// transport failed, the server kept answering 5xx/429 until attempts ran out,
// or the answer was a non-retryable HTTP error or unparsable body.
type NetworkError struct {
	// Attempts is the number of requests actually sent.
	Attempts int
	// StatusCode is the last HTTP status seen, 0 if none was received.
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed after %d attempt(s) (HTTP %d): %v", e.Attempts, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is the error form of an envelope with status "0". The client never
// returns it from a call; callers get it from Response.Err when they want one.
type APIError struct {
	Module  string
	Action  string
	Message string
	Result  string
}

func (e *APIError) Error() string {
	if e.Result != "" {
		return fmt.Sprintf("%s/%s: %s (%s)", e.Module, e.Action, e.Message, e.Result)
	}
	return fmt.Sprintf("%s/%s: %s", e.Module, e.Action, e.Message)
}

// httpStatusError carries a non-2xx status through the retry loop.
type httpStatusError struct {
	code int
	body string
}

func (e *httpStatusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("HTTP %d", e.code)
	}
	return fmt.Sprintf("HTTP %d: %s", e.code, e.body)
}

// nonRetryableError marks failures that another attempt cannot fix.
type nonRetryableError struct {
	err error
}

func (e *nonRetryableError) Error() string {
	return e.err.Error()
}

func (e *nonRetryableError) Unwrap() error {
	return e.err
}
