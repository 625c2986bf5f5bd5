package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Bad renders s as a failure diagnostic when color is enabled.
func Bad(s string, color bool) string {
	if color {
		return badStyle.Render(s)
	}
	return s
}

// Good renders s as a success message when color is enabled.
func Good(s string, color bool) string {
	if color {
		return goodStyle.Render(s)
	}
	return s
}

// ColorEnabled reports whether out is a terminal that should receive color.
// NO_COLOR disables it unconditionally.
func ColorEnabled(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
