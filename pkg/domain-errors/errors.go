// Package domainerrors provides coded errors shared across the service.
//
// Every failure that can reach a client is classified with a stable Code.
// Handlers map codes to HTTP statuses and wire strings; the underlying
// cause stays server-side.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure with a stable wire representation.
type Code string

const (
	CodeWrongCredentials Code = "wrong_credentials"
	CodeInvalidToken     Code = "invalid_token"
	CodeInternal         Code = "internal"
	CodeNotFound         Code = "not_found"
	CodeConflict         Code = "conflict"
	CodeBadRequest       Code = "bad_request"
)

// Error carries a code plus an optional wrapped cause. The message is for
// logs; only the code crosses the wire.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, cause: err}
}

// Is reports whether err (or anything it wraps) carries the given code.
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// HasCode is an alias for Is kept for call-site readability.
func HasCode(err error, code Code) bool {
	return Is(err, code)
}

// GetCode extracts the code from err, defaulting to CodeInternal so that
// unclassified failures never leak detail.
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// HTTPStatus maps a code to its HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeWrongCredentials, CodeInvalidToken:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
