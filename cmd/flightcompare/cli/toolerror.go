// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so that callers (and the exit
// code) can distinguish bad input from missing data or internal faults
// without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation: the user provided invalid input such as a
	// malformed flag value, a bad share reference or an invalid config.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound: a referenced resource does not exist, such as a
	// missing catalog file or an unknown offer id.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal: an unexpected failure such as an I/O error or
	// a terminal that could not be initialised.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by command handlers. It wraps
// the underlying error so errors.Is and errors.As still see the chain.
type ToolError struct {
	Category ErrorCategory
	Err      error

	// Hint is an optional recovery suggestion appended to the message
	// after a blank line.
	Hint string
}

func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the recovery hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// ExitCode maps the category to a process exit code: 2 for validation
// errors, 3 for missing resources, 1 for everything else.
func (e *ToolError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	default:
		return 1
	}
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
