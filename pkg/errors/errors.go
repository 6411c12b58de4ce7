// Package errors provides structured error types for spokeplot.
//
// Every failure the ingestion, layout and writing stages can report carries a
// machine-readable [Code] so that a caller (the CLI, or any other shell embedding
// the pipeline) can decide how to present it without parsing message strings:
//
//   - UNSUPPORTED_FORMAT: the input file extension is not recognized
//   - MALFORMED_RECORD: a line does not decompose into a label and a finite number
//   - IO_FAILURE: reading the input or writing the output failed
//   - INVALID_STYLE: a style value is outside its documented range
//   - UNAVAILABLE: an optional external tool (rsvg-convert) is not installed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedFormat, "unsupported extension %q", ext)
//	if errors.Is(err, errors.ErrCodeUnsupportedFormat) {
//	    // re-prompt for another file
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "read %s", path)
//
// [ExitCode] maps a code to the process exit status used by the command.
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	ErrCodeMalformedRecord   Code = "MALFORMED_RECORD"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Storage errors
	ErrCodeIO Code = "IO_FAILURE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnavailable Code = "UNAVAILABLE"
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
// For *Error types, returns the message without the code prefix, followed by
// the cause when there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// Exit statuses returned by [ExitCode], following sysexits.h.
const (
	ExitFailure     = 1
	ExitDataErr     = 65
	ExitUnavailable = 69
	ExitIOErr       = 74
)

// ExitCode returns the process exit status for err. Errors without a code
// map to ExitFailure; a nil error maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeUnsupportedFormat, ErrCodeMalformedRecord,
		ErrCodeInvalidStyle, ErrCodeInvalidPath:
		return ExitDataErr
	case ErrCodeUnavailable:
		return ExitUnavailable
	case ErrCodeIO:
		return ExitIOErr
	default:
		return ExitFailure
	}
}
