package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle styles the picker heading.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// SelectedStyle highlights the row under the cursor.
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// DimStyle renders secondary detail such as version columns.
	DimStyle = lipgloss.NewStyle().Faint(true)

	// HelpStyle renders the key hints below the list.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle renders failure messages.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
