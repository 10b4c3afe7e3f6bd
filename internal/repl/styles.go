package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, shared with the rest of the CLI
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	usageStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)
