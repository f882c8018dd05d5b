package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#8257E5")).Padding(0, 1)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8257E5"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1DB863"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)

	selectedStyle = lipgloss.NewStyle().Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#1DB863")).Strikethrough(true)
	stripeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("236"))

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8257E5")).
			Padding(1, 2)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)
