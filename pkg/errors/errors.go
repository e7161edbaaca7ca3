// Package errors provides structured error types for the navstack application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the store, CLI, and HTTP layer
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// The path store itself never propagates load or save failures to callers;
// the codes here classify those failures for logs, hooks, and the HTTP API.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidEntry, "invalid entry text: %q", text)
//	if errors.Is(err, errors.ErrCodeInvalidEntry) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSave, origErr, "write path file %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Persistence errors
	ErrCodeLoad   Code = "LOAD_FAILED"
	ErrCodeSave   Code = "SAVE_FAILED"
	ErrCodeEncode Code = "ENCODE_FAILED"
	ErrCodeDecode Code = "DECODE_FAILED"

	// Input validation errors
	ErrCodeInvalidEntry   Code = "INVALID_ENTRY"
	ErrCodeInvalidBackend Code = "INVALID_BACKEND"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Backend availability errors
	ErrCodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"

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
