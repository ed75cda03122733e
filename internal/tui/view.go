package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typerace/internal/session"
)

const (
	defaultWidth = 80
	appTitle     = "TypeRace"
	headerLines  = 2
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	boxLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	timerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")).Bold(true)
	wpmStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	startStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FBF7F")).Bold(true)
	stopStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.viewWidth()
	leftWidth, rightWidth := columnWidths(width)

	header := titleStyle.Width(width).Align(lipgloss.Center).Render(appTitle)
	timer, button, wpm := m.renderPanel(rightWidth)
	right := lipgloss.JoinVertical(lipgloss.Left, timer, button, wpm)
	left := m.renderSentence(leftWidth, lipgloss.Height(right))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return header + strings.Repeat("\n", headerLines) + body + "\n" + m.renderFooter(width)
}

// buttonArea is the Start/Stop button's hit box in screen cells.
func (m *Model) buttonArea() rect {
	leftWidth, rightWidth := columnWidths(m.viewWidth())
	timer, button, _ := m.renderPanel(rightWidth)
	return rect{
		x: leftWidth,
		y: headerLines + lipgloss.Height(timer),
		w: lipgloss.Width(button),
		h: lipgloss.Height(button),
	}
}

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// columnWidths splits the screen 70/30 between sentence and side panel.
func columnWidths(width int) (left, right int) {
	left = width * 70 / 100
	if left < 4 {
		left = 4
	}
	right = width - left
	if right < 4 {
		right = 4
	}
	return left, right
}

func (m *Model) renderPanel(width int) (timer, button, wpm string) {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	box := boxStyle.Width(inner).Align(lipgloss.Center)

	timer = box.Render(boxLabelStyle.Render("Timer") + "\n" + timerStyle.Render(m.round.RemainingText()))

	label, style := "[ Start ]", startStyle
	if m.round.Engine().IsRunning() {
		label, style = "[ Stop ]", stopStyle
	}
	button = box.Render(style.Render(label))

	wpm = box.Render(boxLabelStyle.Render("WPM") + "\n" + wpmStyle.Render(strconv.Itoa(m.displayWPM())))
	return timer, button, wpm
}

// displayWPM is the live value while running and the last round's otherwise.
func (m *Model) displayWPM() int {
	engine := m.round.Engine()
	if engine.IsRunning() {
		if wpm, ok := engine.WPM(); ok {
			return wpm
		}
	}
	return m.round.LastWPM()
}

func (m *Model) renderSentence(width, height int) string {
	engine := m.round.Engine()
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	cursor := -1
	if engine.IsRunning() {
		cursor = engine.CursorIndex()
	}
	styled := buildStyledRunes(engine.SentenceRunes(), engine.CursorIndex(), cursor, engine.HasError(), m.blinkOn)
	content := boxLabelStyle.Render("Sentence") + "\n" + wrapStyledRunes(styled, inner)

	style := boxStyle.Width(width - 2).Padding(0, 1)
	if h := height - 2; h > lipgloss.Height(content) {
		style = style.Height(h)
	}
	return style.Render(content)
}

func (m *Model) renderFooter(width int) string {
	engine := m.round.Engine()
	total := len(engine.SentenceRunes())
	percent := 0.0
	if engine.Phase() != session.PhaseIdle && total > 0 {
		percent = float64(engine.CursorIndex()) / float64(total)
	}
	m.progress.Width = width
	lines := []string{m.progress.ViewAs(percent)}
	if summary := m.lastSummary(); summary != "" {
		lines = append(lines, footerStyle.Render(summary))
	}
	lines = append(lines, m.help.View(m.keys.helpFor(engine.IsRunning())))
	return strings.Join(lines, "\n")
}

func (m *Model) lastSummary() string {
	res, ok := m.round.LastResult()
	if !ok {
		return ""
	}
	outcome := "stopped"
	switch {
	case res.Completed:
		outcome = "completed"
	case res.TimedOut:
		outcome = "time up"
	}
	return fmt.Sprintf("Last %d WPM · %.1f%% · %s in %.1fs", res.WPM, res.Accuracy*100, outcome, res.Elapsed.Seconds())
}
