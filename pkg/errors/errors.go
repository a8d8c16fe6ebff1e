// Package errors provides structured error types for fingerbox.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine, CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Field and panel attribution so a UI can highlight the offending input
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - UNKNOWN_*: Lookups of names that are not registered
//   - NOT_FOUND: Lookups of stored layouts that do not exist
//   - CONFIGURATION: Inconsistent or unsupported configuration
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.InvalidDimension("width", []string{"BOTTOM", "FRONT", "BACK"}, "width must be positive, got %g", w)
//	if errors.Is(err, errors.ErrCodeInvalidDimension) {
//	    // Highlight err.(*errors.Error).Field in the form
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeConfiguration, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"

	// Lookup errors
	ErrCodeUnknownBoxType Code = "UNKNOWN_BOX_TYPE"
	ErrCodeNotFound       Code = "NOT_FOUND"

	// Configuration errors (unknown edge style, bad lid, unreadable parameter file)
	ErrCodeConfiguration Code = "CONFIGURATION"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code     // Machine-readable error code
	Message string   // Human-readable message
	Field   string   // Offending parameter, e.g. "width" or "finger.width" (optional)
	Panels  []string // Panels or panel edges affected, e.g. "FRONT" or "FRONT/left" (optional)
	Cause   error    // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.Panels) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Panels, ", "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
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

// InvalidDimension reports a dimension that is non-positive, infeasible, or
// would produce a degenerate joint. field names the parameter and panels the
// panels (or "PANEL/edge" pairs) that could not be built.
func InvalidDimension(field string, panels []string, format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidDimension,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
		Panels:  panels,
	}
}

// UnknownBoxType reports a box type with no registered builder.
func UnknownBoxType(boxType string, known []string) *Error {
	return &Error{
		Code:    ErrCodeUnknownBoxType,
		Message: fmt.Sprintf("unknown box type %q (must be one of: %s)", boxType, strings.Join(known, ", ")),
		Field:   "type",
	}
}

// Configuration reports an inconsistent or unsupported configuration value.
func Configuration(field string, format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeConfiguration,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
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

// FieldOf returns the offending parameter recorded on err, if any.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// PanelsOf returns the panels recorded on err, if any.
func PanelsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Panels
	}
	return nil
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Field != "" {
			return e.Field + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}
