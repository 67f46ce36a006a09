package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/emocalc/internal/calc"
	"github.com/verte-zerg/emocalc/internal/emotion"
)

var (
	white     = lipgloss.Color("#FFFFFF")
	slate200  = lipgloss.Color("#E2E8F0")
	slate600  = lipgloss.Color("#475569")
	slate700  = lipgloss.Color("#334155")
	slate800  = lipgloss.Color("#1E293B")
	indigo100 = lipgloss.Color("#E0E7FF")
	indigo500 = lipgloss.Color("#6366F1")
	indigo700 = lipgloss.Color("#4338CA")
	red500    = lipgloss.Color("#EF4444")
)

// plainColors is the panel theme while emotion mode is off.
var plainColors = emotion.Colors{Name: "plain", Background: white, Foreground: slate800}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(slate200).
			Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(slate800)
	toggleOn     = lipgloss.NewStyle().Padding(0, 1).Background(indigo500).Foreground(white)
	toggleOff    = lipgloss.NewStyle().Padding(0, 1).Background(emotion.Gray.Background).Foreground(slate600)
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			Padding(0, 1).
			Align(lipgloss.Right)
	secondaryStyle = lipgloss.NewStyle().Faint(true)
	valueStyle     = lipgloss.NewStyle().Bold(true)

	digitButton = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(slate200).
			Foreground(slate700).
			Align(lipgloss.Center)
	operatorButton  = digitButton.Background(indigo100).Foreground(indigo700)
	clearButton     = digitButton.Background(red500).Foreground(white)
	backspaceButton = digitButton.Background(slate200).Foreground(slate700)
	equalsButton    = digitButton.Background(indigo500).Foreground(white)
)

func buttonStyle(k calc.Key, focused bool) lipgloss.Style {
	var style lipgloss.Style
	switch {
	case k == calc.KeyClear:
		style = clearButton
	case k == calc.KeyBackspace:
		style = backspaceButton
	case k == calc.KeyEquals:
		style = equalsButton
	case k.Operation().IsBinary():
		style = operatorButton
	default:
		style = digitButton
	}
	if focused {
		style = style.BorderForeground(indigo500).Bold(true)
	}
	return style
}
