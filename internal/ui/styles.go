package ui

import (
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/store"
	"taskdeck/internal/task"
)

type styles struct {
	title    lipgloss.Style
	dim      lipgloss.Style
	overdue  lipgloss.Style
	dueToday lipgloss.Style
	high     lipgloss.Style
	medium   lipgloss.Style
	low      lipgloss.Style
}

func newStyles(theme string) styles {
	dim := lipgloss.Color("243")
	if theme == store.ThemeLight {
		dim = lipgloss.Color("245")
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		dim:      lipgloss.NewStyle().Foreground(dim),
		overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336")).Bold(true),
		dueToday: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9800")),
		high:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336")),
		medium:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9800")),
		low:      lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50")),
	}
}

func (s styles) priority(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return s.high
	case task.PriorityMedium:
		return s.medium
	default:
		return s.low
	}
}
