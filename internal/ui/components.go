package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel renders content inside a rounded border with a bold title line.
func Panel(content, title string, color lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)

	if title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
		content = titleStyle.Render(title) + "\n" + content
	}

	return style.Render(content)
}

// SectionHeader creates a styled section header with a title and color.
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return headerStyle.Render("─── ") + titleStyle.Render(title) + headerStyle.Render(" "+dashes)
}

// Warning renders a bold warning line.
func Warning(text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorYellow).Render(text)
}
