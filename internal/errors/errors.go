// Package errors provides a lightweight structured error type
// (AssembleError) for category-based classification across the assembly
// pipeline, plus the central handler policy applied during setup and
// assembly.
package errors

import (
	"fmt"
)

// ErrorCategory classifies an assembly error.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"
	CategoryParse  ErrorCategory = "parse"

	// Rendering errors
	CategoryTemplate ErrorCategory = "template"

	// I/O errors
	CategoryFileSystem ErrorCategory = "filesystem"

	// Everything else
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"
	SeverityError   ErrorSeverity = "error"
	SeverityWarning ErrorSeverity = "warning"
)

// AssembleError is a structured error with category and context.
type AssembleError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for AssembleError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *AssembleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap supports errors.Is/As chains.
func (e *AssembleError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *AssembleError) WithContext(key string, value any) *AssembleError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new AssembleError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *AssembleError {
	return &AssembleError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new AssembleError that wraps an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *AssembleError {
	return &AssembleError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category.
func IsCategory(err error, category ErrorCategory) bool {
	if ae, ok := err.(*AssembleError); ok {
		return ae.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, defaulting to
// CategoryInternal for plain errors.
func GetCategory(err error) ErrorCategory {
	if ae, ok := err.(*AssembleError); ok {
		return ae.Category
	}
	return CategoryInternal
}
