package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NoColorEnv disables colors when set to any value (https://no-color.org).
const NoColorEnv = "NO_COLOR"

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// DisableColors switches all styled output to plain text.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ConfigureColors disables colors when asked to, when NO_COLOR is set, or
// when stdout is not a terminal. It returns whether colors stay on.
func ConfigureColors(noColor bool) bool {
	if noColor || os.Getenv(NoColorEnv) != "" || !IsTerminal(os.Stdout) {
		DisableColors()
		return false
	}
	return true
}
