package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/expressgen/internal/config"
	oerrors "github.com/opmodel/expressgen/internal/errors"
	"github.com/opmodel/expressgen/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default expressgen configuration.

The file is written to the resolved config path:
  --config flag > EXPRESSGEN_CONFIG env > ~/.expressgen/config.yaml

Examples:
  # Initialize configuration
  expressgen config init

  # Overwrite existing configuration
  expressgen config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile, err := config.ExpandPath(GetConfigPath())
	if err != nil || configFile == "" {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err:  oerrors.Wrap(oerrors.ErrNotFound, "could not determine config path"),
		}
	}

	if _, err := os.Stat(configFile); err == nil && !configInitForce {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewExistsError(
				"configuration already exists",
				configFile,
				"Use --force to overwrite existing configuration."),
		}
	}

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	// Config lives in a private directory.
	if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitPermissionDenied,
			Err:  oerrors.Wrap(oerrors.ErrPermission, fmt.Sprintf("could not create %s", filepath.Dir(configFile))),
		}
	}

	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitPermissionDenied,
			Err:  oerrors.Wrap(oerrors.ErrPermission, fmt.Sprintf("could not write %s", configFile)),
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+configFile))
	fmt.Fprintln(out, "Validate with: expressgen config vet")

	return nil
}
