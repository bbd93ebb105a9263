// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine facing reason carried on the wire
// Values are stable; clients switch on them
type ErrorCode string

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = "unknown"
	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic ErrorCode = "panic"
	// ErrorCodeUnavailable is for listener and shutdown failures
	ErrorCodeUnavailable ErrorCode = "unavailable"
	// ErrorCodeInvalidArgument is for well formed input the engine cannot use (bad locale, bad form, bad profile file)
	ErrorCodeInvalidArgument ErrorCode = "invalid_argument"
	// ErrorCodeValidation is for request DTOs failing their tags
	ErrorCodeValidation ErrorCode = "validation"
	// ErrorCodeJSON is for bodies that do not decode
	ErrorCodeJSON ErrorCode = "json"
	// ErrorCodeNotFound is for unknown routes and locales without a profile
	ErrorCodeNotFound ErrorCode = "not_found"
	// ErrorCodeMethodNotAllowed is for a known route hit with the wrong verb
	ErrorCodeMethodNotAllowed ErrorCode = "method_not_allowed"
	// ErrorCodeTooLarge is for payloads above the configured limit
	ErrorCodeTooLarge ErrorCode = "too_large"
	// ErrorCodeUnsupported is for well formed requests the server cannot serve
	ErrorCodeUnsupported ErrorCode = "unsupported"
)

var statuses = map[ErrorCode]int{
	ErrorCodeInvalidArgument:  http.StatusUnprocessableEntity,
	ErrorCodeValidation:       http.StatusBadRequest,
	ErrorCodeJSON:             http.StatusBadRequest,
	ErrorCodeNotFound:         http.StatusNotFound,
	ErrorCodeMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrorCodeTooLarge:         http.StatusRequestEntityTooLarge,
	ErrorCodeUnsupported:      http.StatusNotImplemented,
	ErrorCodeUnavailable:      http.StatusServiceUnavailable,
}

// HTTPStatusCode turns an ErrorCode into an http status code; unmapped codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statuses[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error is the structured error type
// msg is human facing, code machine facing, field names the offending input
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

// Wire is the JSON form returned by the API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// WireFrom converts any error into a Wire payload; foreign errors are Unknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithField attaches a field (copy-on-write); foreign errors are wrapped as Unknown
func WithField(err error, field string) error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return &Error{code: ErrorCodeUnknown, msg: err.Error(), field: field, orig: err}
}

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// TooLargef returns a payload too large error
func TooLargef(format string, a ...any) error { return Newf(ErrorCodeTooLarge, format, a...) }

// Unsupportedf returns an unsupported error
func Unsupportedf(format string, a ...any) error { return Newf(ErrorCodeUnsupported, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }
