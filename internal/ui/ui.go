// Package ui styles diagnostic output. Row output on stdout is always
// plain; only stderr messages go through these helpers, and styling is
// dropped entirely when the terminal does not support color or NO_COLOR
// is set.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func plain() bool {
	if termenv.EnvNoColor() {
		return true
	}
	return termenv.NewOutput(os.Stderr).ColorProfile() == termenv.Ascii
}

// RenderError styles a fatal error message.
func RenderError(s string) string {
	if plain() {
		return s
	}
	return errStyle.Render(s)
}

// RenderWarn styles a non-fatal warning.
func RenderWarn(s string) string {
	if plain() {
		return s
	}
	return warnStyle.Render(s)
}

// RenderAccent styles an emphasized fragment.
func RenderAccent(s string) string {
	if plain() {
		return s
	}
	return accentStyle.Render(s)
}
