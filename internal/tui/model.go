// Package tui provides the Bubble Tea calculator interface.
package tui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/emocalc/internal/calc"
	"github.com/verte-zerg/emocalc/internal/emotion"
	"github.com/verte-zerg/emocalc/internal/format"
	"github.com/verte-zerg/emocalc/internal/model"
)

// DefaultTitle is shown in the header when no title is configured.
const DefaultTitle = "Calculator"

// Model implements the Bubble Tea calculator UI.
type Model struct {
	config model.Config
	policy format.Policy
	keys   keyMap
	help   help.Model

	state       calc.State
	showEmotion bool

	focusRow int
	focusCol int

	width  int
	height int
}

// layout is one rendering of the panel together with the clickable regions,
// in panel coordinates.
type layout struct {
	panel   string
	toggle  rect
	buttons [][]rect
}

// NewModel constructs a calculator TUI model.
func NewModel(cfg model.Config, policy format.Policy) *Model {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	m := &Model{
		config:      cfg,
		policy:      policy,
		keys:        newKeyMap(),
		help:        help.New(),
		state:       calc.Initial(),
		showEmotion: cfg.ShowEmotion,
	}
	m.state = m.state.WithEmotion(m.showEmotion)
	return m
}

// State returns the current calculator state.
func (m *Model) State() calc.State {
	return m.state
}

// ShowEmotion reports whether emotion mode is on.
func (m *Model) ShowEmotion() bool {
	return m.showEmotion
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.handleClick(msg.X, msg.Y)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.toggleEmotion()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Press):
			m.press(buttonRows[m.focusRow][m.focusCol].key)
		case key.Matches(msg, m.keys.Up):
			m.moveFocusRow(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveFocusRow(1)
		case key.Matches(msg, m.keys.Left):
			m.moveFocusCol(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveFocusCol(1)
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	l := m.render()
	footer := m.help.View(m.keys)
	if m.width == 0 || m.height == 0 {
		return l.panel + "\n" + footer
	}
	bodyHeight := m.bodyHeight(footer)
	if bodyHeight < 1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, l.panel)
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, l.panel)
	footerLine := lipgloss.Place(m.width, lipgloss.Height(footer), lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) bodyHeight(footer string) int {
	return m.height - lipgloss.Height(footer)
}

func (m *Model) press(k calc.Key) {
	before := m.state
	m.state = m.state.Press(k, m.showEmotion)
	log.Printf("press %s: %s -> %s (op=%s result=%t)", k, before.Current, m.state.Current, m.state.Op, m.state.IsResult)
}

func (m *Model) toggleEmotion() {
	m.showEmotion = !m.showEmotion
	m.state = m.state.WithEmotion(m.showEmotion)
	log.Printf("emotion mode %t", m.showEmotion)
}

func (m *Model) moveFocusRow(delta int) {
	next := m.focusRow + delta
	if next < 0 || next >= len(buttonRows) {
		return
	}
	m.focusCol = indexAtColumn(next, columnOf(m.focusRow, m.focusCol))
	m.focusRow = next
}

func (m *Model) moveFocusCol(delta int) {
	next := m.focusCol + delta
	if next < 0 || next >= len(buttonRows[m.focusRow]) {
		return
	}
	m.focusCol = next
}

func (m *Model) handleClick(x, y int) {
	l := m.render()
	ox, oy := m.origin(l)
	x -= ox
	y -= oy
	if l.toggle.contains(x, y) {
		m.toggleEmotion()
		return
	}
	for r, row := range l.buttons {
		for i, area := range row {
			if area.contains(x, y) {
				m.focusRow = r
				m.focusCol = i
				m.press(buttonRows[r][i].key)
				return
			}
		}
	}
}

// origin returns where View places the panel's top-left corner.
func (m *Model) origin(l layout) (int, int) {
	if m.width == 0 || m.height == 0 {
		return 0, 0
	}
	footer := m.help.View(m.keys)
	bodyHeight := m.bodyHeight(footer)
	if bodyHeight < 1 {
		bodyHeight = m.height
	}
	return centerOffset(m.width, lipgloss.Width(l.panel)), centerOffset(bodyHeight, lipgloss.Height(l.panel))
}

// colors returns the panel and display themes.
func (m *Model) colors() (panel, display emotion.Colors) {
	if !m.showEmotion {
		return plainColors, emotion.Gray
	}
	c := emotion.ColorsFor(m.state.Current)
	return c, c
}

func (m *Model) render() layout {
	panelColors, displayColors := m.colors()

	toggle := m.renderToggle()
	toggleWidth := lipgloss.Width(toggle)
	titleText := runewidth.Truncate(m.config.Title, max(1, gridWidth-toggleWidth-1), "…")
	title := titleStyle.Render(titleText)
	gap := max(1, gridWidth-lipgloss.Width(title)-toggleWidth)
	header := title + strings.Repeat(" ", gap) + toggle

	display := m.renderDisplay(displayColors)
	grid := renderGrid(m.focusRow, m.focusCol)
	content := lipgloss.JoinVertical(lipgloss.Left, header, "", display, "", grid)

	style := panelStyle.Background(panelColors.Background).Foreground(panelColors.Foreground)
	offX := style.GetBorderLeftSize() + style.GetPaddingLeft()
	offY := style.GetBorderTopSize() + style.GetPaddingTop()
	gridY := offY + lipgloss.Height(header) + 1 + lipgloss.Height(display) + 1

	return layout{
		panel: style.Render(content),
		toggle: rect{
			x: offX + lipgloss.Width(title) + gap,
			y: offY,
			w: toggleWidth,
			h: lipgloss.Height(toggle),
		},
		buttons: gridRects(offX, gridY),
	}
}

func (m *Model) renderToggle() string {
	if m.showEmotion {
		return toggleOn.Render("Emotion ON")
	}
	return toggleOff.Render("Emotion OFF")
}

func (m *Model) renderDisplay(c emotion.Colors) string {
	style := displayStyle.
		Width(gridWidth - borderWidth).
		Background(c.Background).
		Foreground(c.Foreground).
		BorderForeground(c.Foreground)
	textWidth := gridWidth - borderWidth - style.GetHorizontalPadding()

	lines := make([]string, 0, 3)
	if m.showEmotion {
		lines = append(lines, m.state.Emotion)
	}
	lines = append(lines,
		valueStyle.Render(runewidth.Truncate(m.currentText(), textWidth, "…")),
		secondaryStyle.Render(runewidth.Truncate(m.secondaryText(), textWidth, "…")),
	)
	return style.Render(strings.Join(lines, "\n"))
}

// currentText formats the current value, keeping a trailing decimal
// separator visible while a fraction is being entered.
func (m *Model) currentText() string {
	text := m.policy.Format(m.state.Current)
	if !m.state.IsResult && strings.HasSuffix(m.state.Current.Text(), ".") {
		text += m.policy.Decimal
	}
	return text
}

func (m *Model) secondaryText() string {
	parts := make([]string, 0, 2)
	if !m.state.Previous.IsEmpty() {
		parts = append(parts, m.policy.Format(m.state.Previous))
	}
	if m.state.Op.IsBinary() {
		parts = append(parts, m.state.Op.Symbol())
	}
	return strings.Join(parts, " ")
}
