package jira

import (
	"errors"
	"fmt"
)

// ErrStatus is returned when the API returns an unexpected status code.
var ErrStatus = errors.New("unexpected status code")

// RequestError reports a failed API request: a transport failure, a non-2xx
// HTTP status, or an undecodable response payload. Use [errors.Is] with
// [ErrStatus] to distinguish status failures from the other two.
type RequestError struct {
	// Method is the HTTP method of the failed request.
	Method string
	// Path is the request path relative to the instance host.
	Path string
	// StatusCode is the HTTP status received, or zero when the request
	// never produced a response.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}

	return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}
