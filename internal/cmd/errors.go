package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	oerrors "github.com/opmodel/expressgen/internal/errors"
	"github.com/opmodel/expressgen/internal/skeleton"
)

// generateError converts a generation failure into an error carrying the
// matching exit code. skeleton.Create has already logged a GenerateError, so
// it is marked as printed.
func generateError(err error) error {
	var genErr *skeleton.GenerateError
	if !errors.As(err, &genErr) {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	var detail error
	code := oerrors.ExitGeneralError

	switch genErr.Kind {
	case skeleton.KindDirectoryExists:
		detail = oerrors.NewExistsError(
			fmt.Sprintf("%s already exists", genErr.Path),
			genErr.Path,
			"Choose a different project name or base directory; existing files are never overwritten.")
		code = oerrors.ExitValidationError
	case skeleton.KindPermissionDenied:
		detail = oerrors.NewPermissionError(
			genErr.Error(),
			genErr.Path,
			"Check that the base directory is writable.")
		code = oerrors.ExitPermissionDenied
	case skeleton.KindInvalidName:
		detail = oerrors.NewValidationError(
			genErr.Err.Error(),
			"",
			"Use letters, digits, '-', '_' or '.', starting with a letter or digit.")
		code = oerrors.ExitValidationError
	case skeleton.KindInvalidPath:
		detail = oerrors.NewValidationError(genErr.Err.Error(), genErr.Path, "Pass an absolute --dir.")
		code = oerrors.ExitValidationError
	default:
		if errors.Is(err, fs.ErrNotExist) {
			detail = oerrors.NewNotFoundError(
				"base directory does not exist",
				filepath.Dir(genErr.Path),
				"Create the base directory first or pass a different --dir.")
			code = oerrors.ExitNotFound
			break
		}
		detail = &oerrors.DetailError{
			Type:     string(genErr.Kind),
			Message:  genErr.Error(),
			Location: genErr.Path,
			Cause:    err,
		}
	}

	return &oerrors.ExitError{Code: code, Err: detail, Printed: true}
}
