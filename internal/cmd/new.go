package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/expressgen/internal/config"
	oerrors "github.com/opmodel/expressgen/internal/errors"
	"github.com/opmodel/expressgen/internal/output"
	"github.com/opmodel/expressgen/internal/skeleton"
)

var newDirFlag string

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create a new Express application",
		Long: `Create a new Express application in <base>/<project-name>.

The base directory is resolved using precedence:
  --dir flag > EXPRESSGEN_BASE_DIR env > baseDir in config > working directory

Nothing is overwritten: if the project directory already exists the command
fails without touching it. A failure midway leaves the partial tree in place.

Examples:
  # Create ./my-app
  expressgen new my-app

  # Create ~/src/my-app
  expressgen new my-app --dir ~/src`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringVarP(&newDirFlag, "dir", "d", "",
		"Base directory to create the project in (env: EXPRESSGEN_BASE_DIR)")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg := GetConfig()
	if err := config.Validate(cfg); err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), GetConfigPath(), "Fix the config file or run 'expressgen config vet'."),
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("determining working directory: %w", err)}
	}

	baseDir, err := config.ResolveBaseDir(config.ResolveBaseDirOptions{
		FlagValue:   newDirFlag,
		ConfigValue: cfg.BaseDir,
		WorkingDir:  wd,
	})
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}
	config.LogResolvedValues(baseDir)

	var result *skeleton.Result
	err = output.RunWithSpinner(fmt.Sprintf("Generating %s", name), func() error {
		var genErr error
		result, genErr = skeleton.Create(baseDir.Value, name)
		return genErr
	})
	if err != nil {
		return generateError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created %s", result.Project.RootPath)))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(name, treeEntries(result.Created), stylesForOutput()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  cd %s\n", result.Project.RootPath)
	fmt.Fprintln(out, "  npm install")
	fmt.Fprintln(out, "  npm start")

	return nil
}
