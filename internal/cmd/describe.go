package cmd

import (
	"github.com/opmodel/expressgen/internal/output"
	"github.com/opmodel/expressgen/internal/skeleton"
)

var entryDescriptions = map[string]string{
	"app.js":          "Application entrypoint",
	"package.json":    "Package manifest",
	"routes":          "Route handlers",
	"routes/index.js": "Home page route",
	"views":           "Pug templates",
	"views/index.pug": "Home page view",
	"views/error.pug": "Error page view",
	"public":          "Static assets",
}

// treeEntries converts created or planned entries into file tree rows.
func treeEntries(entries []skeleton.Entry) []output.TreeEntry {
	rows := make([]output.TreeEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, output.TreeEntry{
			Path:        e.Path,
			Description: entryDescriptions[e.Path],
			IsDir:       e.IsDir,
		})
	}
	return rows
}

// stylesForOutput returns colored styles on a terminal and plain ones otherwise.
func stylesForOutput() *output.Styles {
	if output.IsTTY() {
		return output.GetStyles()
	}
	return output.NoColorStyles()
}
