package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/gitex/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	hintBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

func statusStyle(status m.Status) lipgloss.Style {
	switch status {
	case m.StatusPassed:
		return passedStyle
	case m.StatusFailed:
		return failedStyle
	default:
		return errorStyle
	}
}

func statusIcon(status m.Status) string {
	switch status {
	case m.StatusPassed:
		return "✔"
	case m.StatusFailed:
		return "✘"
	default:
		return "!"
	}
}
