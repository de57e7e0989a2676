// Package errors provides structured error types for minigraphml.
//
// Every failure surfaced by the loader, the consistency pass, the indexed
// conversion and the command-line tool carries a machine-readable [Code]:
//   - IO_ERROR: the input file could not be read
//   - PARSE_ERROR: malformed XML or a payload that does not fit its type
//   - CONSISTENCY_ERROR: dangling edge endpoints, duplicate or empty ids,
//     undeclared attribute keys
//   - INVALID_CONFIG: a configuration file that cannot be applied
//   - CONSUMED: a graph was used after being moved into an indexed graph
//
// # Usage
//
//	err := errors.New(errors.ErrCodeParse, "document has %d graphs", n)
//	if errors.Is(err, errors.ErrCodeParse) {
//	    // Handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeIO          Code = "IO_ERROR"
	ErrCodeParse       Code = "PARSE_ERROR"
	ErrCodeConsistency Code = "CONSISTENCY_ERROR"

	// Usage errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeConsumed      Code = "CONSUMED"

	// Output errors
	ErrCodeEncode Code = "ENCODE_ERROR"
	ErrCodeRender Code = "RENDER_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix,
// followed by the cause when there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// ExitCode maps an error to a process exit status.
// Input problems (unreadable, malformed or inconsistent documents) exit
// with 2, configuration and usage problems with 3, everything else with 1.
func ExitCode(err error) int {
	switch GetCode(err) {
	case ErrCodeIO, ErrCodeParse, ErrCodeConsistency:
		return 2
	case ErrCodeInvalidConfig, ErrCodeInvalidInput:
		return 3
	default:
		return 1
	}
}
