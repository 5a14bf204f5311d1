package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created entries and success.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for modified entries and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removed entries and errors.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

var (
	// StyleNoun styles identifiable nouns (project names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Styles groups the styles used by renderers so tests can swap in plain ones.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Noun    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Border  lipgloss.Style
}

// GetStyles returns the default colored styles.
func GetStyles() *Styles {
	return &Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   StyleDim,
		Noun:    StyleNoun,
		Success: lipgloss.NewStyle().Foreground(ColorGreen),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Error:   lipgloss.NewStyle().Foreground(ColorRed),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
		Border:  lipgloss.NewStyle().Foreground(ColorDimGray),
	}
}

// NoColorStyles returns styles that render text unchanged.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Bold:    plain,
		Muted:   plain,
		Noun:    plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Header:  plain,
		Border:  plain,
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
