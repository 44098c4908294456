package statement

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	empty   lipgloss.Style
	date    lipgloss.Style
	desc    lipgloss.Style
	credit  lipgloss.Style
	debit   lipgloss.Style
	balance lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		empty:   lipgloss.NewStyle().Faint(true),
		date:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		credit:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		debit:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		balance: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}
