package skeleton

import (
	_ "embed"
	"fmt"
)

// TemplateID names one of the fixed content blocks.
type TemplateID string

const (
	// TemplateEntrypoint is the application bootstrap module (app.js).
	TemplateEntrypoint TemplateID = "entrypoint"

	// TemplateManifest is package.json, the only template that varies by project.
	TemplateManifest TemplateID = "manifest"

	// TemplateRouter is the router module with the home route.
	TemplateRouter TemplateID = "router"

	// TemplateHomeView is the home page view.
	TemplateHomeView TemplateID = "homeView"

	// TemplateErrorView is the error page view.
	TemplateErrorView TemplateID = "errorView"
)

//go:embed templates/express/app.js
var entrypointBody []byte

//go:embed templates/express/routes/index.js
var routerBody []byte

//go:embed templates/express/views/index.pug
var homeViewBody []byte

//go:embed templates/express/views/error.pug
var errorViewBody []byte

// staticBodies holds every template that is written verbatim.
var staticBodies = map[TemplateID][]byte{
	TemplateEntrypoint: entrypointBody,
	TemplateRouter:     routerBody,
	TemplateHomeView:   homeViewBody,
	TemplateErrorView:  errorViewBody,
}

// TemplateIDs returns all template identifiers.
func TemplateIDs() []TemplateID {
	return []TemplateID{
		TemplateEntrypoint,
		TemplateManifest,
		TemplateRouter,
		TemplateHomeView,
		TemplateErrorView,
	}
}

// IsValid reports whether id names a known template.
func (id TemplateID) IsValid() bool {
	if id == TemplateManifest {
		return true
	}
	_, ok := staticBodies[id]
	return ok
}

// RenderContext carries the per-project values available to templates.
type RenderContext struct {
	ProjectName string
}

// Render returns the content for a template. Static templates are returned
// as a copy of their embedded body.
func Render(id TemplateID, rc RenderContext) ([]byte, error) {
	if id == TemplateManifest {
		return NewManifest(rc.ProjectName).Marshal()
	}

	body, ok := staticBodies[id]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", id)
	}

	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}
