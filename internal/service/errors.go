package service

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code. The API surface maps each code to a
// stable wire value so clients can branch on kind rather than message text.
type Code string

const (
	CodeNotFound Code = "NOT_FOUND"
	CodeConflict Code = "CONFLICT"
	CodeInvalid  Code = "INVALID"
)

// Error is a typed service error carrying a taxonomy code.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func Invalid(format string, args ...any) *Error {
	return &Error{Code: CodeInvalid, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the taxonomy code of err, or the empty string for errors
// outside the taxonomy (internal failures).
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
