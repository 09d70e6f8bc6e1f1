package tui

import "github.com/charmbracelet/lipgloss"

var (
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true)
	surplusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE58F"))
	cursorStyle  = defaultStyle.Underline(true)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)
