package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Toast    lipgloss.Style

	Series    lipgloss.Style
	Reference lipgloss.Style
	Axis      lipgloss.Style
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("63")
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),

		Label:    lipgloss.NewStyle().Faint(true),
		Value:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")),
		Toast: lipgloss.NewStyle().Italic(true),

		Series:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Reference: lipgloss.NewStyle().Faint(true),
		Axis:      lipgloss.NewStyle().Faint(true),
	}
}
