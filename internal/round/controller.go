// Package round wraps a session engine with a fixed countdown.
package round

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typerace/internal/model"
	"github.com/verte-zerg/typerace/internal/session"
	"github.com/verte-zerg/typerace/internal/stats"
)

// RoundDuration is the fixed length of a round.
const RoundDuration = 30 * time.Second

const roundSeconds = int(RoundDuration / time.Second)

// Controller drives one round at a time: Idle -> Active -> Idle.
type Controller struct {
	engine *session.Engine
	clock  session.Clock
	logger zerolog.Logger

	id        string
	deadline  *time.Time
	remaining int
	lastWPM   int

	last    model.RoundResult
	hasLast bool
}

// New returns an idle controller around engine.
func New(engine *session.Engine, clock session.Clock, logger zerolog.Logger) *Controller {
	return &Controller{
		engine:    engine,
		clock:     clock,
		logger:    logger,
		remaining: roundSeconds,
	}
}

// StartRound starts the engine and arms the countdown. No-op while a
// session is running.
func (c *Controller) StartRound() {
	if c.engine.IsRunning() {
		return
	}
	c.engine.Start()
	deadline := c.clock.Now().Add(RoundDuration)
	c.deadline = &deadline
	c.remaining = roundSeconds
	c.lastWPM = 0
	c.id = uuid.New().String()[:8]
	c.logger.Info().
		Str("round", c.id).
		Int("chars", len(c.engine.SentenceRunes())).
		Msg("round started")
}

// StopRound stops the engine, disarms the countdown and records the result.
func (c *Controller) StopRound() {
	c.stop(false)
}

func (c *Controller) stop(timedOut bool) {
	wasActive := c.deadline != nil
	c.engine.Stop()
	c.deadline = nil
	c.remaining = roundSeconds

	wpm, ok := c.engine.WPM()
	if !ok {
		return
	}
	c.lastWPM = wpm
	if !wasActive {
		return
	}

	elapsed, _ := c.engine.Elapsed()
	c.last = model.RoundResult{
		ID:        c.id,
		Sentence:  c.engine.Sentence(),
		Typed:     c.engine.CursorIndex(),
		Elapsed:   elapsed,
		WPM:       wpm,
		Accuracy:  stats.Accuracy(c.engine.Accepted(), c.engine.Rejected()),
		Completed: c.engine.Complete(),
		TimedOut:  timedOut,
	}
	c.hasLast = true
	c.logger.Info().
		Str("round", c.last.ID).
		Int("wpm", c.last.WPM).
		Int("typed", c.last.Typed).
		Float64("accuracy", c.last.Accuracy).
		Dur("elapsed", c.last.Elapsed).
		Bool("completed", c.last.Completed).
		Bool("timed_out", c.last.TimedOut).
		Msg("round stopped")
}

// Tick recomputes the remaining time and stops the round at the deadline.
func (c *Controller) Tick() {
	if !c.engine.IsRunning() || c.deadline == nil {
		return
	}
	now := c.clock.Now()
	if !now.Before(*c.deadline) {
		c.stop(true)
		c.remaining = 0
		return
	}
	left := int(stats.SaturatingSub(*c.deadline, now) / time.Second)
	if left > roundSeconds {
		left = roundSeconds
	}
	c.remaining = left
}

// RemainingSeconds is the countdown display value in [0, 30].
func (c *Controller) RemainingSeconds() int {
	return c.remaining
}

// RemainingText formats the countdown as m:ss.
func (c *Controller) RemainingText() string {
	return FormatTimer(c.remaining)
}

// LastWPM is the WPM of the most recently stopped round.
func (c *Controller) LastWPM() int {
	return c.lastWPM
}

// LastResult returns the most recently stopped round, if any.
func (c *Controller) LastResult() (model.RoundResult, bool) {
	return c.last, c.hasLast
}

// Active reports whether a countdown is armed.
func (c *Controller) Active() bool {
	return c.deadline != nil
}

// Engine returns the wrapped session engine.
func (c *Controller) Engine() *session.Engine {
	return c.engine
}
