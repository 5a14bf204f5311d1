package output

import "strings"

// OutputFormat specifies the output format.
type OutputFormat string

const (
	// FormatTree renders a file tree.
	FormatTree OutputFormat = "tree"

	// FormatTable renders a table.
	FormatTable OutputFormat = "table"

	// FormatYAML outputs YAML.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs JSON.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat parses s, accepting "yml" for YAML.
// The second return value is false for unknown formats.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "tree":
		return FormatTree, true
	case "table":
		return FormatTable, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// IsOneOf reports whether f is among allowed.
func (f OutputFormat) IsOneOf(allowed ...OutputFormat) bool {
	for _, a := range allowed {
		if f == a {
			return true
		}
	}
	return false
}

// FormatNames joins formats for help text and hints.
func FormatNames(formats ...OutputFormat) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
