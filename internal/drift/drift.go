// Package drift compares an existing project tree with the tree expressgen would generate.
package drift

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"

	"github.com/opmodel/expressgen/internal/output"
	"github.com/opmodel/expressgen/internal/skeleton"
)

// Modification is a planned file whose content differs from the template.
type Modification struct {
	Path string

	// Diff is a rendered dyff report for the manifest; empty for other files.
	Diff string
}

// Report lists how a project differs from a freshly generated one.
type Report struct {
	// ProjectName is taken from the project's manifest, or the directory name.
	ProjectName string

	// Missing lists planned paths that do not exist. Directories end in "/".
	Missing []string

	Modified []Modification
}

// IsEmpty returns true if the project matches the template.
func (r *Report) IsEmpty() bool {
	return len(r.Missing) == 0 && len(r.Modified) == 0
}

// Options configures Compare.
type Options struct {
	// UseColor enables colorized dyff output.
	UseColor bool

	// Plan overrides the default plan.
	Plan *skeleton.Plan
}

// Compare checks every planned directory and file under projectDir.
// Files outside the plan are ignored.
func Compare(projectDir string, opts Options) (*Report, error) {
	info, err := os.Stat(projectDir)
	if err != nil {
		return nil, fmt.Errorf("reading project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", projectDir)
	}

	plan := skeleton.DefaultPlan()
	if opts.Plan != nil {
		plan = *opts.Plan
	}

	report := &Report{ProjectName: filepath.Base(projectDir)}

	for _, dir := range plan.Directories {
		fi, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(dir)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			report.Missing = append(report.Missing, dir+"/")
		case err != nil:
			return nil, fmt.Errorf("checking %s: %w", dir, err)
		case !fi.IsDir():
			report.Modified = append(report.Modified, Modification{Path: dir, Diff: "expected a directory"})
		}
	}

	// The manifest goes first so its name is known before anything else is rendered.
	files := append([]skeleton.PlannedFile(nil), plan.Files...)
	for i, f := range files {
		if f.Template == skeleton.TemplateManifest && i != 0 {
			files[0], files[i] = files[i], files[0]
			break
		}
	}

	for _, f := range files {
		actual, err := os.ReadFile(filepath.Join(projectDir, filepath.FromSlash(f.Path)))
		if errors.Is(err, fs.ErrNotExist) {
			report.Missing = append(report.Missing, f.Path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Path, err)
		}

		if f.Template == skeleton.TemplateManifest {
			if m, err := skeleton.ParseManifest(actual); err == nil && m.Name != "" {
				report.ProjectName = m.Name
			}
		}

		expected, err := skeleton.Render(f.Template, skeleton.RenderContext{ProjectName: report.ProjectName})
		if err != nil {
			return nil, err
		}

		if bytes.Equal(expected, actual) {
			continue
		}

		mod := Modification{Path: f.Path}
		if f.Template == skeleton.TemplateManifest {
			mod.Diff, err = diffJSON(expected, actual, opts.UseColor)
			if err != nil {
				return nil, fmt.Errorf("comparing %s: %w", f.Path, err)
			}
			if mod.Diff == "" {
				// Formatting-only change.
				continue
			}
		}
		report.Modified = append(report.Modified, mod)
	}

	output.Debug("compared project with template",
		"project", report.ProjectName,
		"missing", len(report.Missing),
		"modified", len(report.Modified))

	return report, nil
}

// diffJSON converts both documents to YAML and compares them with dyff.
// It returns an empty string when the documents are semantically equal.
func diffJSON(expected, actual []byte, useColor bool) (string, error) {
	expectedYAML, err := yaml.JSONToYAML(expected)
	if err != nil {
		return "", fmt.Errorf("converting template manifest: %w", err)
	}
	actualYAML, err := yaml.JSONToYAML(actual)
	if err != nil {
		return "", fmt.Errorf("converting project manifest: %w", err)
	}

	from, err := parseYAMLInput("template", expectedYAML)
	if err != nil {
		return "", err
	}
	to, err := parseYAMLInput("project", actualYAML)
	if err != nil {
		return "", err
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("parsing %s YAML: %w", name, err)
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
