package kursdoc

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and they map well to HTTP-ish semantics:
// the crawler reports absent pages as ENOTFOUND, bad input as EINVALID,
// and upstream service failures as EUNAVAILABLE.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EINTERNAL    = "internal"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("kursdoc error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the empty
// string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
