//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrPermission, ErrIO)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "project name cannot be empty",
		Location: "src/Feature",
		Field:    "projectName",
		Context:  map[string]string{"Layer": "Feature", "Action": "add"},
		Hint:     "Pass the project name as the first argument",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: validation failed")
	assert.Contains(t, out, "Location: src/Feature")
	assert.Contains(t, out, "Field: projectName")
	assert.Contains(t, out, "Layer: Feature")
	assert.Contains(t, out, "project name cannot be empty")
	assert.Contains(t, out, "Hint: Pass the project name")
	assert.Less(t, strings.Index(out, "Action"), strings.Index(out, "Layer"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrValidation}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid layer", "layer", "Use Feature, Foundation or Project")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "layer", detail.Field)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("template root missing", "/tmp/templates", "")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "settings check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "settings check failed")
}

func TestFileSystem(t *testing.T) {
	assert.NoError(t, FileSystem("write", "a.txt", nil))

	perm := FileSystem("write", "a.txt", &fs.PathError{Op: "open", Path: "a.txt", Err: fs.ErrPermission})
	assert.True(t, errors.Is(perm, ErrPermission))
	assert.True(t, errors.Is(perm, fs.ErrPermission))
	assert.Equal(t, ExitPermissionDenied, ExitCodeFromError(perm))

	other := FileSystem("rename", "b.txt", fmt.Errorf("disk full"))
	assert.True(t, errors.Is(other, ErrIO))
	assert.Contains(t, other.Error(), "rename b.txt")
	assert.Equal(t, ExitGeneralError, ExitCodeFromError(other))
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", Wrap(ErrValidation, "bad"), ExitValidationError},
		{"not found", Wrap(ErrNotFound, "gone"), ExitNotFound},
		{"permission", Wrap(ErrPermission, "nope"), ExitPermissionDenied},
		{"explicit exit error", &ExitError{Code: 7, Err: errors.New("x")}, 7},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	err := NewExitError(Wrap(ErrValidation, "bad"))
	assert.Equal(t, ExitValidationError, err.Code)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "exit status 3", (&ExitError{Code: 3}).Error())
}
