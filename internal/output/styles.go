package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette, the single source of truth for colors used by the CLI.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" file status.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for descriptions and tree chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles tree roots and summaries.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleMuted styles descriptions.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorDimGray)
)

// Styles groups the styles used by the tree renderer.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
}

// GetStyles returns the tree styles, unstyled when stdout is not a terminal.
func GetStyles() Styles {
	if !IsTerminal() {
		return Styles{Bold: lipgloss.NewStyle(), Muted: lipgloss.NewStyle()}
	}
	return Styles{Bold: StyleBold, Muted: StyleMuted}
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	if !IsTerminal() {
		return "✔ " + msg
	}
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
