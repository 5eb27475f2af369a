// Package errors provides structured error types for assetgraft.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the codec, edit engine and CLI
//   - Machine-readable error codes for programmatic handling
//   - A single place where the abort-or-continue policy is decided
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the failure taxonomy of the edit pipeline:
//   - INPUT_*, CODEC_*: reading or writing container files
//   - *_NOT_FOUND: an edit could not locate its target
//   - MALFORMED_*, AMBIGUOUS_*: operator input that cannot be applied
//   - UNSUPPORTED_*, REMAP_*, DANGLING_*, FOREIGN_*: graph integrity failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeImportNotFound, "import %q not found", name)
//	if errors.Is(err, errors.ErrCodeImportNotFound) {
//	    // Report and continue
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCodecParse, origErr, "decode %s", path)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInputNotFound Code = "INPUT_NOT_FOUND"

	// Codec errors
	ErrCodeCodecParse Code = "CODEC_PARSE"
	ErrCodeCodecWrite Code = "CODEC_WRITE"

	// Lookup errors
	ErrCodeImportNotFound    Code = "IMPORT_NOT_FOUND"
	ErrCodePropertyNotFound  Code = "PROPERTY_NOT_FOUND"
	ErrCodeStructNotFound    Code = "STRUCT_NOT_FOUND"
	ErrCodeLevelRootNotFound Code = "LEVEL_ROOT_NOT_FOUND"
	ErrCodeExportNotFound    Code = "EXPORT_NOT_FOUND"

	// Operator input errors
	ErrCodeMalformedExpression   Code = "MALFORMED_EXPRESSION"
	ErrCodeAmbiguousRootSelector Code = "AMBIGUOUS_ROOT_SELECTOR"

	// Graph integrity errors
	ErrCodeUnsupportedPropertyKind Code = "UNSUPPORTED_PROPERTY_KIND"
	ErrCodeUnsupportedExport       Code = "UNSUPPORTED_EXPORT"
	ErrCodeRemapConsistency        Code = "REMAP_CONSISTENCY"
	ErrCodeDanglingReference       Code = "DANGLING_REFERENCE"
	ErrCodeForeignName             Code = "FOREIGN_NAME"

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

// Recoverable reports whether a run may continue after err.
//
// Only lookup failures of an import rename are best-effort; everything else
// aborts the run before any output is written.
func Recoverable(err error) bool {
	return err != nil && GetCode(err) == ErrCodeImportNotFound
}
