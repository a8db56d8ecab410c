package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates settings or input that failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template root, solution file, or path was not found.
	ErrNotFound = errors.New("not found")

	// ErrPermission indicates the file system refused an operation.
	ErrPermission = errors.New("permission denied")

	// ErrIO indicates any other file system failure while materializing output.
	ErrIO = errors.New("i/o error")
)
