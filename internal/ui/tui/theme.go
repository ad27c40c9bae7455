package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Value  lipgloss.Style
	Manual lipgloss.Style
	Auto   lipgloss.Style
	Error  lipgloss.Style

	TrackFilled lipgloss.Style
	TrackEmpty  lipgloss.Style
	Knob        lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Value:  lipgloss.NewStyle().Bold(true),
		Manual: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Auto:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		TrackFilled: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		TrackEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
		Knob:        lipgloss.NewStyle().Bold(true),
	}
}
