package skeleton

import (
	"encoding/json"
	"fmt"
)

// Constant manifest fields.
const (
	ManifestVersion = "1.0.0"
	ManifestMain    = "app.js"
	ManifestType    = "module"
	ManifestStart   = "node app.js"
)

// Manifest is the package.json record of a generated project.
// Field order matches the serialized key order.
type Manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Main         string            `json:"main"`
	Type         string            `json:"type"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

// Dependencies returns the fixed dependency set of a generated project.
func Dependencies() map[string]string {
	return map[string]string{
		"cookie-parser":      "^1.4.6",
		"express":            "^4.19.2",
		"express-rate-limit": "^7.2.0",
		"helmet":             "^7.1.0",
		"http-errors":        "^2.0.0",
		"morgan":             "^1.10.0",
		"pug":                "^3.0.2",
	}
}

// NewManifest builds the manifest for a project. Only the name varies.
func NewManifest(projectName string) Manifest {
	return Manifest{
		Name:         projectName,
		Version:      ManifestVersion,
		Main:         ManifestMain,
		Type:         ManifestType,
		Scripts:      map[string]string{"start": ManifestStart},
		Dependencies: Dependencies(),
	}
}

// Marshal serializes the manifest as two-space indented JSON with a
// trailing newline. Map keys are emitted in sorted order.
func (m Manifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// ParseManifest decodes package.json content.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest: %w", err)
	}
	return m, nil
}
