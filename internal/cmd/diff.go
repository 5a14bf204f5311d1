package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/opmodel/expressgen/internal/drift"
	oerrors "github.com/opmodel/expressgen/internal/errors"
	"github.com/opmodel/expressgen/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [project-dir]",
		Short: "Compare a project with the template",
		Long: `Compare a generated project with what 'expressgen new' would create today.

Reports planned files and directories that are missing and planned files whose
content changed. package.json is compared semantically, so reformatting alone
is not reported. Files that are not part of the template are ignored.

Examples:
  # Compare the project in the current directory
  expressgen diff

  # Compare another project
  expressgen diff ./my-app`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDiff,
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) == 1 {
		projectDir = args[0]
	}

	report, err := drift.Compare(projectDir, drift.Options{UseColor: output.IsTTY()})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &oerrors.ExitError{
				Code: oerrors.ExitNotFound,
				Err:  oerrors.NewNotFoundError("project directory not found", projectDir, ""),
			}
		}
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	modified := make([]output.ModifiedItem, 0, len(report.Modified))
	for _, m := range report.Modified {
		modified = append(modified, output.ModifiedItem{Name: m.Path, Diff: m.Diff})
	}

	output.ProjectLogger(report.ProjectName).Debug("diff complete",
		"missing", len(report.Missing),
		"modified", len(report.Modified))

	fmt.Fprint(cmd.OutOrStdout(), output.RenderDiff(report.Missing, modified, stylesForOutput()))
	return nil
}
