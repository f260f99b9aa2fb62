// Package errors provides structured error types for seqtools.
//
// Every failure a command can report falls into one of four classes:
//   - usage errors (INVALID_INPUT, INVALID_PATH): bad arguments or flags
//   - I/O errors (FILE_NOT_FOUND, IO_ERROR): unreadable input, unwritable output
//   - data errors (MALFORMED_RECORD, INVALID_FORMAT): input that cannot be parsed
//   - value errors (INVALID_VALUE): a single bad value, recovered locally
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "length must be >= 0, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle usage error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Usage errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// I/O errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"

	// Data errors
	ErrCodeMalformedRecord Code = "MALFORMED_RECORD"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Value errors
	ErrCodeInvalidValue Code = "INVALID_VALUE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// WrapIO wraps a filesystem error, choosing FILE_NOT_FOUND when the cause
// is fs.ErrNotExist and IO_ERROR otherwise.
func WrapIO(cause error, format string, args ...any) *Error {
	code := ErrCodeIO
	if errors.Is(cause, fs.ErrNotExist) {
		code = ErrCodeFileNotFound
	}
	return Wrap(code, cause, format, args...)
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
