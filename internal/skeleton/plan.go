package skeleton

import (
	"fmt"
	"path"
	"strings"
)

// PlannedFile pairs a project-relative path with the template that produces it.
type PlannedFile struct {
	// Path is slash-separated and relative to the project root.
	Path string

	Template TemplateID
}

// Plan is the static description of a generated project tree.
type Plan struct {
	// Directories are created in order; a parent must precede its children.
	Directories []string

	// Files are written in order, each after its parent directory exists.
	Files []PlannedFile
}

// DefaultPlan returns the Express application layout.
func DefaultPlan() Plan {
	return Plan{
		Directories: []string{
			"routes",
			"views",
			"public",
			"public/images",
			"public/scripts",
			"public/styles",
		},
		Files: []PlannedFile{
			{Path: "app.js", Template: TemplateEntrypoint},
			{Path: "package.json", Template: TemplateManifest},
			{Path: "routes/index.js", Template: TemplateRouter},
			{Path: "views/index.pug", Template: TemplateHomeView},
			{Path: "views/error.pug", Template: TemplateErrorView},
		},
	}
}

// StepAction is the filesystem operation a Step performs.
type StepAction string

const (
	// StepMkdir creates a directory.
	StepMkdir StepAction = "mkdir"

	// StepWrite renders a template and writes it to a new file.
	StepWrite StepAction = "write"
)

// Step is one filesystem operation relative to the project root.
// The root itself has Path ".".
type Step struct {
	Action   StepAction
	Path     string
	Template TemplateID
}

// Validate checks that every directory's parent is created before it and
// that every file's parent directory is part of the plan.
func (p Plan) Validate() error {
	created := map[string]bool{".": true}

	for _, dir := range p.Directories {
		if err := checkRelative(dir); err != nil {
			return err
		}
		if created[dir] {
			return fmt.Errorf("directory %q listed twice", dir)
		}
		if parent := path.Dir(dir); !created[parent] {
			return fmt.Errorf("directory %q listed before its parent %q", dir, parent)
		}
		created[dir] = true
	}

	seen := make(map[string]bool, len(p.Files))
	for _, f := range p.Files {
		if err := checkRelative(f.Path); err != nil {
			return err
		}
		if seen[f.Path] || created[f.Path] {
			return fmt.Errorf("file %q listed twice", f.Path)
		}
		if parent := path.Dir(f.Path); !created[parent] {
			return fmt.Errorf("file %q has no planned parent directory %q", f.Path, parent)
		}
		if !f.Template.IsValid() {
			return fmt.Errorf("file %q uses unknown template %q", f.Path, f.Template)
		}
		seen[f.Path] = true
	}

	return nil
}

// Steps returns the operations in execution order: the root directory,
// root-level files, all sub-directories, then nested files.
func (p Plan) Steps() []Step {
	steps := make([]Step, 0, 1+len(p.Directories)+len(p.Files))
	steps = append(steps, Step{Action: StepMkdir, Path: "."})

	var nested []Step
	for _, f := range p.Files {
		s := Step{Action: StepWrite, Path: f.Path, Template: f.Template}
		if path.Dir(f.Path) == "." {
			steps = append(steps, s)
		} else {
			nested = append(nested, s)
		}
	}

	for _, dir := range p.Directories {
		steps = append(steps, Step{Action: StepMkdir, Path: dir})
	}

	return append(steps, nested...)
}

func checkRelative(p string) error {
	if p == "" || path.IsAbs(p) || path.Clean(p) != p || p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return fmt.Errorf("path %q must be a clean relative path inside the project", p)
	}
	return nil
}
