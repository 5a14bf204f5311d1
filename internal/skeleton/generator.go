package skeleton

import (
	"fmt"
	"path/filepath"

	"github.com/opmodel/expressgen/internal/output"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Entry is a created file or directory, relative to the project root.
type Entry struct {
	Path  string
	IsDir bool
}

// Result describes a successfully generated project.
type Result struct {
	Project ProjectSpec

	// Created lists everything created below the root, in creation order.
	Created []Entry
}

// Files returns the created file paths in creation order.
func (r *Result) Files() []string {
	var files []string
	for _, e := range r.Created {
		if !e.IsDir {
			files = append(files, e.Path)
		}
	}
	return files
}

// Directories returns the created sub-directory paths in creation order.
func (r *Result) Directories() []string {
	var dirs []string
	for _, e := range r.Created {
		if e.IsDir {
			dirs = append(dirs, e.Path)
		}
	}
	return dirs
}

// Generator materializes a Plan on a Filesystem.
type Generator struct {
	fs   Filesystem
	plan Plan
}

// Option configures a Generator.
type Option func(*Generator)

// WithFilesystem replaces the local disk.
func WithFilesystem(fs Filesystem) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithPlan replaces the default Express plan.
func WithPlan(p Plan) Option {
	return func(g *Generator) {
		g.plan = p
	}
}

// NewGenerator creates a generator for the default plan on the local disk.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		fs:   OSFilesystem{},
		plan: DefaultPlan(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate creates the project tree one step at a time. The first failing
// step aborts the run; anything created before it is left in place.
func (g *Generator) Generate(spec ProjectSpec) (*Result, error) {
	if err := g.plan.Validate(); err != nil {
		return nil, &GenerateError{Kind: KindInvalidPlan, Op: "plan", Err: err}
	}

	rc := RenderContext{ProjectName: spec.Name}
	result := &Result{Project: spec}

	for _, step := range g.plan.Steps() {
		target := filepath.Join(spec.RootPath, filepath.FromSlash(step.Path))

		switch step.Action {
		case StepMkdir:
			if err := g.fs.Mkdir(target, dirPerm); err != nil {
				return nil, fsError("mkdir", target, err)
			}
			if step.Path != "." {
				result.Created = append(result.Created, Entry{Path: step.Path, IsDir: true})
			}
			output.Debug("created directory", "path", step.Path)

		case StepWrite:
			content, err := Render(step.Template, rc)
			if err != nil {
				return nil, &GenerateError{Kind: KindIO, Op: "render", Path: step.Path, Err: err}
			}
			if err := g.fs.WriteNewFile(target, content, filePerm); err != nil {
				return nil, fsError("write", target, err)
			}
			result.Created = append(result.Created, Entry{Path: step.Path})
			output.Debug("created file", "path", step.Path, "template", step.Template)

		default:
			return nil, &GenerateError{Kind: KindInvalidPlan, Op: "plan", Path: step.Path,
				Err: fmt.Errorf("unknown step action %q", step.Action)}
		}
	}

	return result, nil
}

// Create resolves and generates a project in baseDir. It logs exactly one
// line: a success line naming the project, or the failure.
func Create(baseDir, name string, opts ...Option) (*Result, error) {
	result, err := create(baseDir, name, opts...)
	if err != nil {
		output.Error("error generating project", "name", name, "kind", string(KindOf(err)), "err", err)
		return nil, err
	}

	output.Info(fmt.Sprintf("Express project '%s' generated successfully", name), "path", result.Project.RootPath)
	return result, nil
}

func create(baseDir, name string, opts ...Option) (*Result, error) {
	spec, err := Resolve(baseDir, name)
	if err != nil {
		return nil, err
	}

	output.Debug("generating project", "name", spec.Name, "root", spec.RootPath)
	return NewGenerator(opts...).Generate(spec)
}
