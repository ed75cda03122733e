// Package session implements the typing session engine: lifecycle,
// per-character validation, and elapsed/WPM queries.
package session

import (
	"time"

	"github.com/verte-zerg/typerace/internal/stats"
)

// Placeholder is shown before the first session starts.
const Placeholder = "Press Enter to start"

// Clock reads the current time. clockwork.Clock satisfies it.
type Clock interface {
	Now() time.Time
}

// SentenceSource supplies a new target sentence on every start.
type SentenceSource interface {
	Next() string
}

// Engine holds one typing session. It is reset in place on every Start.
// It is not safe for concurrent use; the host event loop owns it.
type Engine struct {
	src   SentenceSource
	clock Clock

	state    lifecycle
	sentence []rune
	input    []rune
	hasError bool

	accepted int
	rejected int
}

// New returns an idle engine showing the placeholder sentence.
func New(src SentenceSource, clock Clock) *Engine {
	return &Engine{
		src:      src,
		clock:    clock,
		state:    idle{},
		sentence: []rune(Placeholder),
	}
}

// Start draws a new sentence and begins timing. No-op while running.
func (e *Engine) Start() {
	if e.IsRunning() {
		return
	}
	e.sentence = []rune(e.src.Next())
	e.input = e.input[:0]
	e.hasError = false
	e.accepted = 0
	e.rejected = 0
	r := running{startedAt: e.clock.Now()}
	e.state = r
	if len(e.sentence) == 0 {
		e.state = r.finish(r.startedAt)
	}
}

// Stop ends a running session. Input and start time are kept for display.
func (e *Engine) Stop() {
	e.hasError = false
	if r, ok := e.state.(running); ok {
		e.state = r.finish(e.clock.Now())
	}
}

// PushChar validates c against the expected character at the cursor.
// A match advances the cursor and may finish the session; a mismatch is
// rejected and only raises the error flag.
func (e *Engine) PushChar(c rune) {
	r, ok := e.state.(running)
	if !ok {
		return
	}
	idx := len(e.input)
	if idx >= len(e.sentence) {
		return
	}
	if c != e.sentence[idx] {
		e.hasError = true
		e.rejected++
		return
	}
	e.input = append(e.input, c)
	e.hasError = false
	e.accepted++
	if len(e.input) == len(e.sentence) {
		e.state = r.finish(e.clock.Now())
	}
}

// Backspace removes the last matched character and clears the error flag.
func (e *Engine) Backspace() {
	if !e.IsRunning() {
		return
	}
	e.hasError = false
	if len(e.input) > 0 {
		e.input = e.input[:len(e.input)-1]
	}
}

// Elapsed returns the session duration so far, frozen once finished.
// ok is false if no session was ever started.
func (e *Engine) Elapsed() (d time.Duration, ok bool) {
	switch s := e.state.(type) {
	case running:
		return stats.SaturatingSub(e.clock.Now(), s.startedAt), true
	case finished:
		return stats.SaturatingSub(s.finishedAt, s.startedAt), true
	default:
		return 0, false
	}
}

// WPM returns words per minute over the typed characters.
// ok is false if no session was ever started.
func (e *Engine) WPM() (wpm int, ok bool) {
	elapsed, ok := e.Elapsed()
	if !ok {
		return 0, false
	}
	return stats.WPM(len(e.input), elapsed), true
}

// Phase reports the lifecycle state.
func (e *Engine) Phase() Phase {
	return e.state.phase()
}

// IsRunning reports whether a session is started and not yet finished.
func (e *Engine) IsRunning() bool {
	_, ok := e.state.(running)
	return ok
}

// Sentence returns the target text.
func (e *Engine) Sentence() string {
	return string(e.sentence)
}

// Input returns the matched prefix of the sentence.
func (e *Engine) Input() string {
	return string(e.input)
}

// SentenceRunes returns a copy of the target text as runes.
func (e *Engine) SentenceRunes() []rune {
	return append([]rune(nil), e.sentence...)
}

// CursorIndex is the number of matched characters.
func (e *Engine) CursorIndex() int {
	return len(e.input)
}

// HasError reports whether the last keystroke was rejected.
func (e *Engine) HasError() bool {
	return e.hasError
}

// Complete reports whether the input reproduces the sentence.
func (e *Engine) Complete() bool {
	return e.state.phase() != PhaseIdle && len(e.input) == len(e.sentence)
}

// Accepted counts matching keystrokes since the last start.
func (e *Engine) Accepted() int {
	return e.accepted
}

// Rejected counts mismatched keystrokes since the last start.
func (e *Engine) Rejected() int {
	return e.rejected
}
