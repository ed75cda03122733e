// Package tui provides the Bubble Tea host for typing rounds.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typerace/internal/model"
	"github.com/verte-zerg/typerace/internal/round"
	"github.com/verte-zerg/typerace/internal/session"
)

type tickMsg time.Time

// Model implements the Bubble Tea typing UI. It owns the round controller
// and is the only caller of it.
type Model struct {
	config model.Config
	round  *round.Controller
	clock  session.Clock
	logger zerolog.Logger

	keys     keyMap
	help     help.Model
	progress progress.Model

	width  int
	height int

	blinkOn     bool
	nextBlinkAt time.Time
}

// NewModel constructs a typing TUI model.
func NewModel(cfg model.Config, ctrl *round.Controller, clock session.Clock, logger zerolog.Logger) *Model {
	bar := progress.New(progress.WithSolidFill("#C89A3A"), progress.WithoutPercentage())
	bar.EmptyColor = "#4A4A4A"
	m := &Model{
		config:   cfg,
		round:    ctrl,
		clock:    clock,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
	}
	m.resetBlink()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.round.Tick()
		m.updateBlink()
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.config.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	engine := m.round.Engine()
	if !engine.IsRunning() {
		switch {
		case key.Matches(msg, m.keys.Start):
			m.startRound()
		case key.Matches(msg, m.keys.Exit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		// Alt chords are shortcuts, and pasted text is not typing.
		if !msg.Alt && !msg.Paste {
			for _, r := range msg.Runes {
				engine.PushChar(r)
			}
		}
	case tea.KeySpace:
		engine.PushChar(' ')
	case tea.KeyTab:
		engine.PushChar('\t')
	case tea.KeyBackspace:
		engine.Backspace()
	}
	m.resetBlink()

	if engine.Complete() {
		m.round.StopRound()
	}
	if key.Matches(msg, m.keys.Stop) && engine.IsRunning() {
		m.round.StopRound()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.config.Mouse {
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if !m.buttonArea().contains(msg.X, msg.Y) {
		return
	}
	if m.round.Engine().IsRunning() {
		m.round.StopRound()
		return
	}
	m.startRound()
}

func (m *Model) startRound() {
	m.round.StartRound()
	m.resetBlink()
	m.logger.Debug().Str("sentence", m.round.Engine().Sentence()).Msg("sentence drawn")
}

func (m *Model) updateBlink() {
	now := m.clock.Now()
	if now.Before(m.nextBlinkAt) {
		return
	}
	m.blinkOn = !m.blinkOn
	m.nextBlinkAt = now.Add(m.config.BlinkInterval)
}

func (m *Model) resetBlink() {
	m.blinkOn = true
	m.nextBlinkAt = m.clock.Now().Add(m.config.BlinkInterval)
}
