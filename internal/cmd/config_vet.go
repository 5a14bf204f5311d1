package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/expressgen/internal/config"
	oerrors "github.com/opmodel/expressgen/internal/errors"
	"github.com/opmodel/expressgen/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the expressgen configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Values are usable (for example baseDir is not blank)

The config path is resolved using precedence:
  --config flag > EXPRESSGEN_CONFIG env > ~/.expressgen/config.yaml

Examples:
  # Validate default configuration
  expressgen config vet

  # Validate a custom config path
  expressgen config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configFile, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	output.Debug("validating config", "path", configFile, "source", configPath.Source)

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: oerrors.NewNotFoundError(
				"configuration file not found",
				configFile,
				"Run 'expressgen config init' to create default configuration"),
		}
	}

	if err := config.ValidateFile(configFile); err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), configFile, ""),
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config is valid: "+configFile))
	return nil
}
