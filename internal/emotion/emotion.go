// Package emotion maps calculator values to an emoji and a colour theme.
package emotion

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/emocalc/internal/model"
)

// Emoji shown for each band of values.
const (
	Neutral     = "😐"
	Crying      = "😢"
	MoneyMouth  = "🤑"
	StarStruck  = "🤩"
	Smiling     = "😊"
	Grinning    = "😄"
	SlightSmile = "🙂"
)

// Colors is a background/foreground pair for the display.
type Colors struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
}

// Themes used by emotion mode.
var (
	Red    = Colors{Name: "red", Background: lipgloss.Color("#FEE2E2"), Foreground: lipgloss.Color("#7F1D1D")}
	Purple = Colors{Name: "purple", Background: lipgloss.Color("#F3E8FF"), Foreground: lipgloss.Color("#581C87")}
	Yellow = Colors{Name: "yellow", Background: lipgloss.Color("#FEF9C3"), Foreground: lipgloss.Color("#713F12")}
	Green  = Colors{Name: "green", Background: lipgloss.Color("#DCFCE7"), Foreground: lipgloss.Color("#14532D")}
	Blue   = Colors{Name: "blue", Background: lipgloss.Color("#DBEAFE"), Foreground: lipgloss.Color("#1E3A8A")}
	Gray   = Colors{Name: "gray", Background: lipgloss.Color("#F1F5F9"), Foreground: lipgloss.Color("#0F172A")}
)

// ForNumber returns the emoji for n. Thresholds are exclusive.
func ForNumber(n float64) string {
	switch {
	case math.IsNaN(n), n == 0:
		return Neutral
	case n < 0:
		return Crying
	case n > 1_000_000:
		return MoneyMouth
	case n > 100_000:
		return StarStruck
	case n > 10_000:
		return Smiling
	case n > 1_000:
		return Grinning
	default:
		return SlightSmile
	}
}

// ColorsForNumber returns the theme for n.
func ColorsForNumber(n float64) Colors {
	switch {
	case math.IsNaN(n):
		return Gray
	case n < 0:
		return Red
	case n > 1_000_000:
		return Purple
	case n > 100_000:
		return Yellow
	case n > 10_000:
		return Green
	case n > 1_000:
		return Blue
	default:
		return Gray
	}
}

// For returns the emoji for v. Empty and error values are neutral.
func For(v model.Value) string {
	n, ok := v.Float()
	if !ok {
		return Neutral
	}
	return ForNumber(n)
}

// ColorsFor returns the theme for v. Empty and error values are gray.
func ColorsFor(v model.Value) Colors {
	n, ok := v.Float()
	if !ok {
		return Gray
	}
	return ColorsForNumber(n)
}
