package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Outcome box and accent styles. Colours follow the standard ANSI palette
// so they degrade cleanly on plain terminals.
var (
	successBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")). // Green
			Padding(0, 2)

	errorBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")). // Red
			Padding(0, 2)

	successText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	errorText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	warnText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // Yellow

	mutedText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray
)
