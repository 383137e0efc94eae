// Package ui holds terminal styling and the interactive prompts.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("3")).
			Padding(0, 2).
			Align(lipgloss.Center)
)

// Red renders s as an error.
func Red(s string) string { return ErrorStyle.Render(s) }

// Green renders s as a success.
func Green(s string) string { return SuccessStyle.Render(s) }

// Yellow renders s as a warning.
func Yellow(s string) string { return WarnStyle.Render(s) }

// Accent highlights names such as commands and modules.
func Accent(s string) string { return AccentStyle.Render(s) }

// Dim renders secondary information.
func Dim(s string) string { return DimStyle.Render(s) }

// Bold renders s in bold.
func Bold(s string) string { return BoldStyle.Render(s) }

// Box draws a rounded box around lines, centered.
func Box(lines ...string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
