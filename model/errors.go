package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies the failure class of an Error.
type ErrorCode int

const (
	// ErrCodeUnknown wraps any failure not covered by the other codes.
	ErrCodeUnknown ErrorCode = 0
	// ErrCodeEmptyAPIKey means the service was built without an API key.
	ErrCodeEmptyAPIKey ErrorCode = 100
	// ErrCodeJSONParsing means the provider payload could not be decoded,
	// or a required field was absent.
	ErrCodeJSONParsing ErrorCode = 201
	// ErrCodeHTTPError is any non-success HTTP status other than 401.
	ErrCodeHTTPError ErrorCode = http.StatusBadRequest
	// ErrCodeHTTPUnauthorized is an HTTP 401 from the provider.
	ErrCodeHTTPUnauthorized ErrorCode = http.StatusUnauthorized
)

// Error is the single error type surfaced by every public operation.
// Transport and JSON library failures are re-wrapped into it at the
// adapter boundary and never leak their concrete types to callers.
type Error struct {
	Code    ErrorCode
	Message string
	cause   error
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.Message == "" && e.cause != nil {
		return fmt.Sprintf("weather: code %d: %s", e.Code, e.cause)
	}
	return fmt.Sprintf("weather: code %d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf extracts the ErrorCode from err, or ErrCodeUnknown when err is
// not (and does not wrap) a *Error.
func CodeOf(err error) ErrorCode {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Code
	}
	return ErrCodeUnknown
}
