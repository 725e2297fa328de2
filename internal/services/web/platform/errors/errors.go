// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
)

// Error is a typed web application failure. Message is user-facing text
// (usually relayed from the backend); Key is a localization fallback used
// when Message is empty.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	return string(e.Kind)
}

// Unwrap exposes the underlying cause.
func (e Error) Unwrap() error {
	return e.Err
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap attaches a kind and localization key to a lower-level cause. The
// cause's own text never becomes the user-facing message.
func Wrap(kind Kind, key string, err error) error {
	if err == nil {
		return nil
	}
	return Error{Kind: kind, Key: strings.TrimSpace(key), Err: err}
}

// StatusCoder is implemented by transport errors that already carry an HTTP
// status (for example backend API responses).
type StatusCoder interface {
	StatusCode() int
}

// KindFromStatus maps an upstream HTTP status onto a web error kind.
func KindFromStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindInvalidInput
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusServiceUnavailable || status == http.StatusBadGateway || status == http.StatusGatewayTimeout:
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// KindOf returns the classified kind of err.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	var coder StatusCoder
	if stderrors.As(err, &coder) {
		return KindFromStatus(coder.StatusCode())
	}
	return KindUnknown
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// PublicMessager is implemented by errors whose text is safe to show users.
type PublicMessager interface {
	PublicMessage() string
}

// Message returns user-facing text carried by err, or "" when only a
// localized fallback should be shown.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		if msg := strings.TrimSpace(appErr.Message); msg != "" {
			return msg
		}
	}
	var public PublicMessager
	if stderrors.As(err, &public) {
		return strings.TrimSpace(public.PublicMessage())
	}
	return ""
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
