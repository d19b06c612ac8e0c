package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
	CategoryProtocol Category = "protocol"
	CategoryRuntime  Category = "runtime"
)

// Error is a structured error with a code, detail and suggestion.
type Error struct {
	// Code is a unique error identifier (e.g., "T001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation specific to this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "Unknown error"}
	}
	return &Error{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates an Error with a formatted message and no code.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err under code unless it already is an *Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return New(code).Wrap(err)
}

// Template defines a registered error.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Config (T001-T019)
	"T001": {
		Category:   CategoryConfig,
		Message:    "Configuration file could not be read",
		Suggestion: "Check that tessera.json is valid JSON",
	},
	"T002": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// CLI (T020-T039)
	"T020": {
		Category:   CategoryCLI,
		Message:    "Server failed",
		Suggestion: "Check that the listen address is free",
	},
	"T021": {
		Category: CategoryCLI,
		Message:  "Render failed",
	},

	// Protocol (T040-T059)
	"T040": {
		Category: CategoryProtocol,
		Message:  "Malformed frame from client",
	},
	"T041": {
		Category: CategoryProtocol,
		Message:  "WebSocket write failed",
	},

	// Runtime (T060-T079)
	"T060": {
		Category:   CategoryRuntime,
		Message:    "Render function panicked",
		Suggestion: "Views must not panic; check the render function for nil dereferences",
	},
	"T061": {
		Category: CategoryRuntime,
		Message:  "Event handler panicked",
	},
	"T062": {
		Category: CategoryRuntime,
		Message:  "Session closed",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
