package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/expressgen/internal/errors"
	"github.com/opmodel/expressgen/internal/output"
	"github.com/opmodel/expressgen/internal/skeleton"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet [project-dir]",
		Short: "Validate a project's package.json",
		Long: `Validate a project's package.json against the manifest schema.

Checks performed:
  1. package.json exists in the project directory
  2. it is valid JSON
  3. name, version, main, type, scripts.start and dependencies are present
     and well-formed

Examples:
  # Validate the project in the current directory
  expressgen vet

  # Validate another project
  expressgen vet ./my-app`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVet,
	}
}

func runVet(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) == 1 {
		projectDir = args[0]
	}

	manifestPath := filepath.Join(projectDir, "package.json")
	output.Debug("validating manifest", "path", manifestPath)

	data, err := os.ReadFile(manifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: oerrors.NewNotFoundError(
				"package.json not found",
				manifestPath,
				"Run 'expressgen vet' from a project directory or pass its path."),
		}
	}
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("reading %s: %w", manifestPath, err)}
	}

	if err := skeleton.ValidateManifest(manifestPath, data); err != nil {
		var mErr *skeleton.ManifestValidationError
		if errors.As(err, &mErr) {
			return &oerrors.ExitError{
				Code: oerrors.ExitValidationError,
				Err:  oerrors.NewValidationError(mErr.Details, manifestPath, ""),
			}
		}
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf("%s is valid", manifestPath)))
	return nil
}
