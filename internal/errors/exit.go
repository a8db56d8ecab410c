package errors

import (
	"errors"
	"strconv"
)

// Exit codes returned by the helix binary.
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitValidationError  = 2
	ExitPermissionDenied = 4
	ExitNotFound         = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with the exit code derived from it.
func NewExitError(err error) *ExitError {
	return &ExitError{Code: ExitCodeFromError(err), Err: err}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
