package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)
