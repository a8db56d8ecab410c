// Package errors provides sentinel errors, structured error details and exit
// codes for the helix CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Field is the settings field for validation errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// FileSystem classifies a file system failure at path. Permission failures
// wrap ErrPermission, everything else wraps ErrIO. The original error stays
// reachable through errors.Is / errors.As.
func FileSystem(op, path string, err error) error {
	if err == nil {
		return nil
	}
	sentinel := ErrIO
	if errors.Is(err, fs.ErrPermission) {
		sentinel = ErrPermission
	}
	return fmt.Errorf("%s %s: %w: %w", op, path, sentinel, err)
}
