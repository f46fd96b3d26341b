package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	err   lipgloss.Style
	info  lipgloss.Style
	allIn lipgloss.Style
	plain lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),

		label: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		err: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		allIn: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		plain: r.NewStyle(),
	}
}
