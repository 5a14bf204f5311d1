//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrExists)
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "already exists",
		Message:  "directory already exists",
		Location: "/work/myapp",
		Context:  map[string]string{"Project": "myapp"},
		Hint:     "Choose a different project name",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: already exists")
	assert.Contains(t, output, "Location: /work/myapp")
	assert.Contains(t, output, "Project: myapp")
	assert.Contains(t, output, "directory already exists")
	assert.Contains(t, output, "Hint: Choose a different project name")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", NewValidationError("bad", "x", "fix it"), ErrValidation},
		{"exists", NewExistsError("exists", "x", ""), ErrExists},
		{"not found", NewNotFoundError("missing", "x", ""), ErrNotFound},
		{"permission", NewPermissionError("denied", "x", ""), ErrPermission},
		{"wrap", Wrap(ErrNotFound, "no home"), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit exit error", &ExitError{Code: 3, Err: errors.New("x")}, 3},
		{"validation", NewValidationError("bad", "", ""), ExitValidationError},
		{"exists", NewExistsError("exists", "", ""), ExitValidationError},
		{"permission", fmt.Errorf("wrapped: %w", ErrPermission), ExitPermissionDenied},
		{"not found", NewNotFoundError("missing", "", ""), ExitNotFound},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := NewValidationError("bad", "", "")
	err := &ExitError{Code: ExitValidationError, Err: inner}

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, inner.Error(), err.Error())
	assert.Equal(t, "exit code 1", (&ExitError{Code: 1}).Error())
}
