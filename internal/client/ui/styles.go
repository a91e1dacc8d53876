// Package ui holds the lipgloss styles shared by the CLI commands.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.Color("#7D56F4")
	Accent  = lipgloss.Color("#04B575")
	Warn    = lipgloss.Color("#FFAD00")
	ErrCol  = lipgloss.Color("#FF5F56")
	Muted   = lipgloss.Color("#888888")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	CourseStyle = lipgloss.NewStyle().
			Bold(true)

	MeetingStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	IDStyle = lipgloss.NewStyle().
		Foreground(Muted)

	CodeStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Accent)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Warn)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrCol)
)
