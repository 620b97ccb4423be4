package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	ticker  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
	warning lipgloss.Style
	spinner lipgloss.Style
	success lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ticker:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(16),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}
