package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	oerrors "github.com/opmodel/expressgen/internal/errors"
	"github.com/opmodel/expressgen/internal/output"
	"github.com/opmodel/expressgen/internal/skeleton"
)

var manifestOutputFlag string

var manifestFormats = []output.OutputFormat{output.FormatJSON, output.FormatYAML}

// NewManifestCmd creates the manifest command.
func NewManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest <project-name>",
		Short: "Print the package.json 'new' would write",
		Long: `Print the package.json manifest generated for a project name.

Examples:
  # Print package.json
  expressgen manifest my-app

  # Print it as YAML
  expressgen manifest my-app -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runManifest,
	}

	cmd.Flags().StringVarP(&manifestOutputFlag, "output", "o", "json",
		fmt.Sprintf("Output format (%s)", output.FormatNames(manifestFormats...)))

	return cmd
}

func runManifest(cmd *cobra.Command, args []string) error {
	name := args[0]

	format, ok := output.ParseOutputFormat(manifestOutputFlag)
	if !ok || !format.IsOneOf(manifestFormats...) {
		return invalidFormatError(manifestOutputFlag, manifestFormats)
	}

	if err := skeleton.ValidateProjectName(name); err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", ""),
		}
	}

	data, err := skeleton.Render(skeleton.TemplateManifest, skeleton.RenderContext{ProjectName: name})
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	if format == output.FormatYAML {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("converting manifest to YAML: %w", err)}
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
