package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorActive)).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim))

	line := logoStyle.Render("ALNVIEW")
	if title != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, titleStyle.Render(" · "+title))
	}

	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width).
		Render(line)
}
