// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so that the exit status can
// be chosen without parsing error message text.
type ErrorCategory string

const (
	// CategoryUsage indicates the command line itself is malformed:
	// unknown command or flag, wrong number of positional arguments.
	CategoryUsage ErrorCategory = "usage"

	// CategoryValidation indicates the caller provided an argument the
	// command understood but rejected: a field out of range, an
	// unparseable number, a buffer of the wrong size. The caller should
	// fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryInternal indicates an unexpected error: I/O failures,
	// encoder failures, bugs.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands.
//
// ToolError wraps an inner error, preserving the full error chain for
// errors.Is and errors.As while adding the category. Use the
// category-specific constructors rather than constructing ToolError
// directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not
// included in the string.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// Usage creates a usage error: the command line is malformed.
func Usage(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryUsage, Err: fmt.Errorf(format, args...)}
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
