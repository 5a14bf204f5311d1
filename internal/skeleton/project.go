// Package skeleton materializes a new Express application tree from a fixed template.
package skeleton

import (
	"fmt"
	"path/filepath"
	"strings"
)

// maxProjectNameLength matches the npm package name limit.
const maxProjectNameLength = 214

// ProjectSpec identifies the project being generated.
type ProjectSpec struct {
	// Name is the project name exactly as supplied by the caller.
	Name string

	// RootPath is the absolute directory the project is created in.
	RootPath string
}

// Resolve derives the project root from an absolute base directory and a project name.
// It performs no filesystem access.
func Resolve(baseDir, name string) (ProjectSpec, error) {
	if err := ValidateProjectName(name); err != nil {
		return ProjectSpec{}, &GenerateError{Kind: KindInvalidName, Op: "resolve", Path: name, Err: err}
	}

	if !filepath.IsAbs(baseDir) {
		return ProjectSpec{}, &GenerateError{
			Kind: KindInvalidPath,
			Op:   "resolve",
			Path: baseDir,
			Err:  fmt.Errorf("base directory %q is not absolute", baseDir),
		}
	}

	return ProjectSpec{
		Name:     name,
		RootPath: filepath.Join(baseDir, name),
	}, nil
}

// ValidateProjectName checks that name is usable as a single directory segment
// and as a package.json name. Only ASCII letters and digits are accepted,
// matching the #Manifest name pattern.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if len(name) > maxProjectNameLength {
		return fmt.Errorf("invalid project name %q: longer than %d characters", name, maxProjectNameLength)
	}

	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid project name %q: must be a single directory name", name)
	}

	for i, r := range name {
		if i == 0 && !isASCIIAlnum(r) {
			return fmt.Errorf("invalid project name %q: must start with a letter or digit", name)
		}
		if !isASCIIAlnum(r) && r != '-' && r != '_' && r != '.' {
			return fmt.Errorf("invalid project name %q: contains invalid character %q", name, r)
		}
	}

	return nil
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
