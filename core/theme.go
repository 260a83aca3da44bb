package core

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#e0e0ff"
	colorMuted   lipgloss.Color = "#8a8ab0"
	colorBorder  lipgloss.Color = "#3b3b66"
	colorBg      lipgloss.Color = "#0f0f23"
	colorMantle  lipgloss.Color = "#151530"
	colorSurface lipgloss.Color = "#1e1e3f"
	colorAccent  lipgloss.Color = "#7f7fd5"
	colorSuccess lipgloss.Color = "#6fe3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorTabOff  lipgloss.Color = "#6c6c96"
)
