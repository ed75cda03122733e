package session

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type fixedSource struct {
	sentences []string
	next      int
}

func (f *fixedSource) Next() string {
	s := f.sentences[f.next%len(f.sentences)]
	f.next++
	return s
}

// rewindClock returns queued times in order, repeating the last one.
type rewindClock struct {
	times []time.Time
}

func (c *rewindClock) Now() time.Time {
	t := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return t
}

func newTestEngine(sentences ...string) (*Engine, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return New(&fixedSource{sentences: sentences}, clock), clock
}

func typeString(e *Engine, s string) {
	for _, r := range s {
		e.PushChar(r)
	}
}

func TestNewEngineIsIdle(t *testing.T) {
	e, _ := newTestEngine("abc")
	if e.IsRunning() {
		t.Fatalf("new engine should be idle")
	}
	if e.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want idle", e.Phase())
	}
	if e.Sentence() != Placeholder {
		t.Fatalf("sentence = %q, want placeholder", e.Sentence())
	}
	if _, ok := e.Elapsed(); ok {
		t.Fatalf("elapsed should be absent before start")
	}
	if _, ok := e.WPM(); ok {
		t.Fatalf("wpm should be absent before start")
	}
	if e.Complete() {
		t.Fatalf("idle engine should not be complete")
	}
}

func TestIdleMutationsAreNoops(t *testing.T) {
	e, _ := newTestEngine("abc")
	e.PushChar('P')
	e.Backspace()
	e.Stop()
	if e.Input() != "" || e.HasError() || e.Phase() != PhaseIdle {
		t.Fatalf("idle engine mutated: input=%q err=%v phase=%v", e.Input(), e.HasError(), e.Phase())
	}
}

func TestExactMatchAutoFinishes(t *testing.T) {
	e, _ := newTestEngine("hi there")
	e.Start()
	typeString(e, "hi ther")
	if !e.IsRunning() {
		t.Fatalf("should still run before final char")
	}
	e.PushChar('e')
	if e.IsRunning() {
		t.Fatalf("should finish on final matching char")
	}
	if e.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want finished", e.Phase())
	}
	if !e.Complete() || e.Input() != e.Sentence() {
		t.Fatalf("expected complete input, got %q", e.Input())
	}
}

func TestMismatchRejectedAtEveryPosition(t *testing.T) {
	sentence := "a b."
	for pos := 0; pos < len(sentence); pos++ {
		e, _ := newTestEngine(sentence)
		e.Start()
		typeString(e, sentence[:pos])
		e.PushChar('#')
		if e.Input() != sentence[:pos] {
			t.Fatalf("pos %d: input changed to %q", pos, e.Input())
		}
		if !e.HasError() {
			t.Fatalf("pos %d: expected error flag", pos)
		}
		e.PushChar(rune(sentence[pos]))
		if e.HasError() {
			t.Fatalf("pos %d: error flag should clear on match", pos)
		}
		if e.CursorIndex() != pos+1 {
			t.Fatalf("pos %d: cursor = %d", pos, e.CursorIndex())
		}
	}
}

func TestBackspace(t *testing.T) {
	e, _ := newTestEngine("abc")
	e.Start()
	e.Backspace()
	if e.Input() != "" || !e.IsRunning() {
		t.Fatalf("backspace on empty input should be a no-op")
	}

	typeString(e, "ab")
	e.PushChar('x')
	e.Backspace()
	if e.HasError() {
		t.Fatalf("backspace should clear error")
	}
	if e.Input() != "a" {
		t.Fatalf("backspace should remove exactly one char, got %q", e.Input())
	}
	e.Backspace()
	e.Backspace()
	if e.Input() != "" {
		t.Fatalf("expected empty input, got %q", e.Input())
	}
}

func TestBackspaceAfterFinishIsNoop(t *testing.T) {
	e, _ := newTestEngine("ab")
	e.Start()
	typeString(e, "ab")
	e.Backspace()
	if e.Input() != "ab" {
		t.Fatalf("finished input should be frozen, got %q", e.Input())
	}
}

func TestStartIsIdempotentWhileRunning(t *testing.T) {
	e, clock := newTestEngine("first", "second")
	e.Start()
	typeString(e, "fi")
	clock.Advance(2 * time.Second)
	e.Start()
	if e.Sentence() != "first" || e.Input() != "fi" {
		t.Fatalf("restart while running changed state: %q %q", e.Sentence(), e.Input())
	}
	if d, _ := e.Elapsed(); d != 2*time.Second {
		t.Fatalf("start time was reset, elapsed=%v", d)
	}
}

func TestStartAfterStopResets(t *testing.T) {
	e, clock := newTestEngine("first", "second")
	e.Start()
	typeString(e, "fi")
	e.PushChar('z')
	clock.Advance(time.Second)
	e.Stop()
	e.Start()
	if e.Sentence() != "second" {
		t.Fatalf("expected new sentence, got %q", e.Sentence())
	}
	if e.Input() != "" || e.HasError() || e.Accepted() != 0 || e.Rejected() != 0 {
		t.Fatalf("start should reset input, error and counters")
	}
	if d, ok := e.Elapsed(); !ok || d != 0 {
		t.Fatalf("elapsed after restart = %v, %v", d, ok)
	}
}

func TestStopIsIdempotentAndKeepsInput(t *testing.T) {
	e, clock := newTestEngine("abcdef")
	e.Start()
	typeString(e, "abc")
	e.PushChar('q')
	clock.Advance(3 * time.Second)
	e.Stop()
	if e.HasError() {
		t.Fatalf("stop should clear error")
	}
	clock.Advance(5 * time.Second)
	e.Stop()
	if e.Input() != "abc" {
		t.Fatalf("stop should keep input, got %q", e.Input())
	}
	if d, _ := e.Elapsed(); d != 3*time.Second {
		t.Fatalf("second stop moved finish time, elapsed=%v", d)
	}
}

func TestElapsedMonotonicThenFrozen(t *testing.T) {
	e, clock := newTestEngine("abc")
	e.Start()
	var last time.Duration
	for i := 0; i < 5; i++ {
		clock.Advance(250 * time.Millisecond)
		d, ok := e.Elapsed()
		if !ok || d < last {
			t.Fatalf("elapsed went from %v to %v", last, d)
		}
		last = d
	}
	e.Stop()
	frozen, _ := e.Elapsed()
	clock.Advance(time.Minute)
	if d, _ := e.Elapsed(); d != frozen {
		t.Fatalf("elapsed changed after stop: %v -> %v", frozen, d)
	}
}

func TestElapsedSaturatesOnBackwardsClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &rewindClock{times: []time.Time{start, start.Add(-time.Second)}}
	e := New(&fixedSource{sentences: []string{"abc"}}, clock)
	e.Start()
	d, ok := e.Elapsed()
	if !ok || d != 0 {
		t.Fatalf("elapsed = %v, want 0", d)
	}
	if wpm, _ := e.WPM(); wpm != 0 {
		t.Fatalf("wpm = %d, want 0", wpm)
	}
}

func TestWPMFiftyCharsInAMinute(t *testing.T) {
	sentence := "the quick brown fox jumps over the lazy dog again and again"
	e, clock := newTestEngine(sentence)
	e.Start()
	typeString(e, sentence[:50])
	clock.Advance(time.Minute)
	e.Stop()
	wpm, ok := e.WPM()
	if !ok || wpm != 10 {
		t.Fatalf("wpm = %d (%v), want 10", wpm, ok)
	}
}

func TestWPMZeroElapsed(t *testing.T) {
	e, _ := newTestEngine("ab")
	e.Start()
	typeString(e, "ab")
	wpm, ok := e.WPM()
	if !ok || wpm != 0 {
		t.Fatalf("wpm = %d (%v), want 0", wpm, ok)
	}
}

func TestLiveWPMUsesGrowingDenominator(t *testing.T) {
	e, clock := newTestEngine("aaaaaaaaaaaaaaaaaaaa")
	e.Start()
	typeString(e, "aaaaaaaaaa")
	clock.Advance(6 * time.Second)
	early, _ := e.WPM()
	clock.Advance(6 * time.Second)
	later, _ := e.WPM()
	if early != 20 || later != 10 {
		t.Fatalf("live wpm = %d then %d, want 20 then 10", early, later)
	}
}

func TestUnicodeScalarGranularity(t *testing.T) {
	e, _ := newTestEngine("héllo wörld")
	e.Start()
	typeString(e, "hé")
	if e.CursorIndex() != 2 {
		t.Fatalf("cursor = %d, want 2 runes", e.CursorIndex())
	}
	e.PushChar('e')
	if !e.HasError() {
		t.Fatalf("plain e should not match é")
	}
	typeString(e, "llo wörld")
	if e.IsRunning() {
		t.Fatalf("expected finished after full unicode match")
	}
}

func TestCountersTrackKeystrokes(t *testing.T) {
	e, _ := newTestEngine("abc")
	e.Start()
	e.PushChar('a')
	e.PushChar('x')
	e.PushChar('y')
	e.PushChar('b')
	if e.Accepted() != 2 || e.Rejected() != 2 {
		t.Fatalf("accepted=%d rejected=%d", e.Accepted(), e.Rejected())
	}
}

func TestEmptySentenceFinishesImmediately(t *testing.T) {
	e, _ := newTestEngine("")
	e.Start()
	if e.IsRunning() || !e.Complete() {
		t.Fatalf("empty sentence should finish on start")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRunning.String() != "running" || Phase(9).String() != "unknown" {
		t.Fatalf("unexpected phase strings")
	}
}
