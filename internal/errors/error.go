package errors

import (
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryScan   Category = "scan"
	CategoryBuild  Category = "build"
	CategoryEmit   Category = "emit"
	CategoryCLI    Category = "cli"
)

// RouteError is a structured error with a code, suggestion, and wrapped cause.
type RouteError struct {
	// Code is a unique error identifier (e.g., "R020").
	Code string

	// Category is the error type (config, scan, build, emit, cli).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *RouteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *RouteError) Unwrap() error {
	return e.Wrapped
}

// WithDetail sets the detail text.
func (e *RouteError) WithDetail(detail string) *RouteError {
	e.Detail = detail
	return e
}

// WithDetailf sets the detail text from a format string.
func (e *RouteError) WithDetailf(format string, args ...any) *RouteError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion sets the fix suggestion.
func (e *RouteError) WithSuggestion(suggestion string) *RouteError {
	e.Suggestion = suggestion
	return e
}

// Wrap attaches an underlying cause.
func (e *RouteError) Wrap(err error) *RouteError {
	e.Wrapped = err
	return e
}

// Format returns a multi-line human-readable rendering of the error.
func (e *RouteError) Format() string {
	var b strings.Builder

	if e.Code != "" {
		fmt.Fprintf(&b, "ERROR %s: %s\n", e.Code, e.Message)
	} else {
		fmt.Fprintf(&b, "ERROR: %s\n", e.Message)
	}

	if e.Detail != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Detail)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "\n  Cause: %v\n", e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Hint: %s\n", e.Suggestion)
	}

	return b.String()
}

// New creates an error from a registered code.
// Unknown codes produce a generic error so callers never get a nil.
func New(code string) *RouteError {
	if tmpl, ok := registry[code]; ok {
		return &RouteError{
			Code:       code,
			Category:   tmpl.Category,
			Message:    tmpl.Message,
			Detail:     tmpl.Detail,
			Suggestion: tmpl.Suggestion,
		}
	}
	return &RouteError{
		Code:     code,
		Category: CategoryCLI,
		Message:  "unknown error",
	}
}

// Newf creates an ad-hoc error without a registered code.
func Newf(category Category, format string, args ...any) *RouteError {
	return &RouteError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}
