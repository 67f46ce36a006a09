package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/emocalc/internal/calc"
)

const (
	gridColumns  = 4
	cellWidth    = 7
	cellGap      = 1
	buttonHeight = 3
	borderWidth  = 2
)

// gridWidth is the outer width of a full row of buttons.
const gridWidth = gridColumns*(cellWidth+borderWidth) + (gridColumns-1)*cellGap

type button struct {
	label string
	key   calc.Key
	span  int
}

var buttonRows = [][]button{
	{{"C", calc.KeyClear, 2}, {"⌫", calc.KeyBackspace, 1}, {"÷", calc.KeyDivide, 1}},
	{{"7", calc.Key7, 1}, {"8", calc.Key8, 1}, {"9", calc.Key9, 1}, {"×", calc.KeyMultiply, 1}},
	{{"4", calc.Key4, 1}, {"5", calc.Key5, 1}, {"6", calc.Key6, 1}, {"-", calc.KeySubtract, 1}},
	{{"1", calc.Key1, 1}, {"2", calc.Key2, 1}, {"3", calc.Key3, 1}, {"+", calc.KeyAdd, 1}},
	{{"0", calc.Key0, 2}, {".", calc.KeyDecimal, 1}, {"=", calc.KeyEquals, 1}},
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (b button) outerWidth() int {
	return b.span*(cellWidth+borderWidth) + (b.span-1)*cellGap
}

// columnOf returns the first grid column covered by buttonRows[row][idx].
func columnOf(row, idx int) int {
	col := 0
	for i := 0; i < idx; i++ {
		col += buttonRows[row][i].span
	}
	return col
}

// indexAtColumn returns the button in row that covers col.
func indexAtColumn(row, col int) int {
	start := 0
	for i, b := range buttonRows[row] {
		if col < start+b.span {
			return i
		}
		start += b.span
	}
	return len(buttonRows[row]) - 1
}

func renderGrid(focusRow, focusCol int) string {
	rows := make([]string, 0, len(buttonRows))
	for r, row := range buttonRows {
		parts := make([]string, 0, len(row)*2)
		for i, b := range row {
			if i > 0 {
				parts = append(parts, strings.Repeat(" ", cellGap))
			}
			style := buttonStyle(b.key, r == focusRow && i == focusCol)
			parts = append(parts, style.Width(b.outerWidth()-borderWidth).Render(b.label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// gridRects lays out the buttons with the grid's top-left corner at (x, y).
func gridRects(x, y int) [][]rect {
	out := make([][]rect, len(buttonRows))
	for r, row := range buttonRows {
		cx := x
		out[r] = make([]rect, len(row))
		for i, b := range row {
			w := b.outerWidth()
			out[r][i] = rect{x: cx, y: y + r*buttonHeight, w: w, h: buttonHeight}
			cx += w + cellGap
		}
	}
	return out
}

// centerOffset matches how lipgloss.Place splits the gap around centered content.
func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}
