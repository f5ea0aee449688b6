// Package style provides shared UI styling primitives including colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#06B6D4")
	White  = lipgloss.Color("#FFFFFF")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Paint renders text in color on out. Ascii outputs get the text unchanged.
func Paint(out *termenv.Output, text string, color lipgloss.Color) string {
	if out == nil || out.Profile == termenv.Ascii {
		return text
	}
	return out.String(text).Foreground(out.Color(string(color))).String()
}
