package backend

import (
	"fmt"
	"net/http"
)

// Error is a non-2xx backend response.
type Error struct {
	Status  int
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s: %d: %s", e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s: %d", e.Path, e.Status)
}

// StatusCode returns the backend HTTP status.
func (e *Error) StatusCode() int { return e.Status }

// PublicMessage returns the backend-provided message, if any.
func (e *Error) PublicMessage() string { return e.Message }

// UnreachableError reports a transport failure: DNS, connect, timeout or a
// truncated body. Its cause is never shown to users.
type UnreachableError struct {
	Path string
	Err  error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("backend %s unreachable: %v", e.Path, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// StatusCode maps transport failures to 503.
func (e *UnreachableError) StatusCode() int { return http.StatusServiceUnavailable }

// DecodeError reports a 2xx response that does not match the expected DTO.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("backend %s: decode response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusCode maps malformed upstream responses to 502.
func (e *DecodeError) StatusCode() int { return http.StatusBadGateway }
