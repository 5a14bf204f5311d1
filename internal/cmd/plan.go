package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/expressgen/internal/errors"
	"github.com/opmodel/expressgen/internal/output"
	"github.com/opmodel/expressgen/internal/skeleton"
)

var planOutputFlag string

var planFormats = []output.OutputFormat{
	output.FormatTree,
	output.FormatTable,
	output.FormatYAML,
	output.FormatJSON,
}

// planDocument is the yaml/json form of a plan.
type planDocument struct {
	Project string     `json:"project" yaml:"project"`
	Steps   []planStep `json:"steps" yaml:"steps"`
}

type planStep struct {
	Action   string `json:"action" yaml:"action"`
	Path     string `json:"path" yaml:"path"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <project-name>",
		Short: "Show what 'new' would create",
		Long: `Show the directories and files 'expressgen new' would create, in
execution order, without touching the filesystem.

Examples:
  # Show the project tree
  expressgen plan my-app

  # Show every step in order
  expressgen plan my-app -o table

  # Machine-readable plan
  expressgen plan my-app -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runPlan,
	}

	cmd.Flags().StringVarP(&planOutputFlag, "output", "o", "tree",
		fmt.Sprintf("Output format (%s)", output.FormatNames(planFormats...)))

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	name := args[0]

	format, ok := output.ParseOutputFormat(planOutputFlag)
	if !ok || !format.IsOneOf(planFormats...) {
		return invalidFormatError(planOutputFlag, planFormats)
	}

	if err := skeleton.ValidateProjectName(name); err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", ""),
		}
	}

	steps := skeleton.DefaultPlan().Steps()
	out := cmd.OutOrStdout()

	switch format {
	case output.FormatTree:
		var entries []skeleton.Entry
		for _, s := range steps {
			if s.Path == "." {
				continue
			}
			entries = append(entries, skeleton.Entry{Path: s.Path, IsDir: s.Action == skeleton.StepMkdir})
		}
		fmt.Fprint(out, output.RenderFileTree(name, treeEntries(entries), stylesForOutput()))

	case output.FormatTable:
		tbl := output.NewTable("STEP", "ACTION", "PATH", "TEMPLATE").WithStyles(stylesForOutput())
		for i, s := range steps {
			tbl.Row(strconv.Itoa(i+1), string(s.Action), displayPath(name, s.Path), string(s.Template))
		}
		fmt.Fprintln(out, tbl.String())

	case output.FormatYAML, output.FormatJSON:
		doc := planDocument{Project: name}
		for _, s := range steps {
			doc.Steps = append(doc.Steps, planStep{
				Action:   string(s.Action),
				Path:     displayPath(name, s.Path),
				Template: string(s.Template),
			})
		}

		var data []byte
		var err error
		if format == output.FormatJSON {
			data, err = json.MarshalIndent(doc, "", "  ")
			data = append(data, '\n')
		} else {
			data, err = yaml.Marshal(doc)
		}
		if err != nil {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("marshaling plan: %w", err)}
		}
		fmt.Fprint(out, string(data))
	}

	return nil
}

// displayPath shows a plan path relative to the project's parent directory.
func displayPath(name, p string) string {
	if p == "." {
		return name
	}
	return name + "/" + p
}

func invalidFormatError(value string, allowed []output.OutputFormat) error {
	return &oerrors.ExitError{
		Code: oerrors.ExitValidationError,
		Err: oerrors.NewValidationError(
			fmt.Sprintf("unsupported output format %q", value),
			"",
			fmt.Sprintf("Valid formats: %s", output.FormatNames(allowed...))),
	}
}
