package preview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	heading    lipgloss.Style
	detail     lipgloss.Style
	callout    lipgloss.Style
	code       lipgloss.Style
	checklist  lipgloss.Style
	divider    lipgloss.Style
	link       lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		callout:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		code:       lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
		checklist:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		divider:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		link:       lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("75")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
