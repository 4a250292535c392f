package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	bounty     lipgloss.Style
	amount     lipgloss.Style
	detail     lipgloss.Style
	meta       lipgloss.Style
	tag        lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	open       lipgloss.Style
	inProgress lipgloss.Style
	completed  lipgloss.Style
	cancelled  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		bounty:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		amount:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		tag:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		open:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		inProgress: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		completed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		cancelled:  lipgloss.NewStyle().Faint(true),
	}
}

func (s styles) status(status string) lipgloss.Style {
	switch status {
	case "OPEN":
		return s.open
	case "IN_PROGRESS":
		return s.inProgress
	case "COMPLETED":
		return s.completed
	default:
		return s.cancelled
	}
}
