package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/expressgen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show expressgen version information.

Displays:
  - expressgen version, commit, and build date
  - Go version and the CUE SDK used for manifest validation`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	return nil
}
