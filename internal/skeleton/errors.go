package skeleton

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies a generation failure.
type Kind string

const (
	// KindDirectoryExists means a directory or file being created was already present.
	KindDirectoryExists Kind = "directory already exists"

	// KindPermissionDenied means the filesystem refused the operation.
	KindPermissionDenied Kind = "permission denied"

	// KindIO covers every other filesystem failure (disk full, bad name, ...).
	KindIO Kind = "i/o error"

	// KindInvalidName means the project name failed validation.
	KindInvalidName Kind = "invalid project name"

	// KindInvalidPath means the base directory is unusable.
	KindInvalidPath Kind = "invalid base directory"

	// KindInvalidPlan means the plan breaks parent-before-child ordering.
	KindInvalidPlan Kind = "invalid plan"
)

// GenerateError reports the first step that failed.
type GenerateError struct {
	Kind Kind

	// Op is the step that failed (resolve, mkdir, render, write).
	Op string

	// Path is the path the step was acting on.
	Path string

	Err error
}

// Error implements the error interface. A wrapped *fs.PathError contributes
// only its cause, since Op and Path already name the step.
func (e *GenerateError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}

	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, cause)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, cause)
}

// Unwrap returns the underlying error.
func (e *GenerateError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindIO if err is not a GenerateError.
func KindOf(err error) Kind {
	var genErr *GenerateError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindIO
}

// classify maps a filesystem error onto a Kind.
func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrExist):
		return KindDirectoryExists
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	default:
		return KindIO
	}
}

func fsError(op, path string, err error) *GenerateError {
	return &GenerateError{Kind: classify(err), Op: op, Path: path, Err: err}
}
