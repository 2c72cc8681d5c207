package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#00ADD8") // Go blue
	successColor = lipgloss.Color("#00D084")
	errorColor   = lipgloss.Color("#FF6B6B")
	mutedColor   = lipgloss.Color("#64748B")

	baseStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(1, 0)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(12)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true).
				Width(12)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Margin(1, 0, 0, 0)
)
