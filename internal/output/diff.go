package output

import (
	"fmt"
	"strings"
)

// ModifiedItem is a path whose content differs, with an optional rendered diff.
type ModifiedItem struct {
	Name string
	Diff string
}

// RenderDiff renders missing and modified paths followed by a summary line.
func RenderDiff(missing []string, modified []ModifiedItem, styles *Styles) string {
	if len(missing) == 0 && len(modified) == 0 {
		return "No changes detected.\n"
	}

	var sb strings.Builder

	if len(missing) > 0 {
		sb.WriteString(styles.Error.Render("Missing:"))
		sb.WriteString("\n")
		for _, name := range missing {
			sb.WriteString("  - ")
			sb.WriteString(styles.Error.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(modified) > 0 {
		sb.WriteString(styles.Warning.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(styles.Warning.Render(mod.Name))
			sb.WriteString("\n")
			sb.WriteString(IndentDiff(mod.Diff, "    "))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(missing), len(modified)))
	sb.WriteString("\n")

	return sb.String()
}

// IndentDiff indents every non-empty line of diff.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func diffSummary(missing, modified int) string {
	parts := make([]string, 0, 2)
	if missing > 0 {
		parts = append(parts, fmt.Sprintf("%d missing", missing))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", modified))
	}
	return strings.Join(parts, ", ")
}
