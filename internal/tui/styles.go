package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("62")
	colorAccent  = lipgloss.Color("205")
	colorMuted   = lipgloss.Color("241")
	colorDanger  = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(colorPrimary).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 2)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(26)

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				Width(26)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Width(30)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
