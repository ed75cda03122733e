package session

import "time"

// Phase names the lifecycle state of an Engine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// lifecycle is one of idle, running or finished. Finished always carries
// the start it was derived from.
type lifecycle interface {
	phase() Phase
}

type idle struct{}

type running struct {
	startedAt time.Time
}

type finished struct {
	startedAt  time.Time
	finishedAt time.Time
}

func (idle) phase() Phase     { return PhaseIdle }
func (running) phase() Phase  { return PhaseRunning }
func (finished) phase() Phase { return PhaseFinished }

func (r running) finish(at time.Time) finished {
	return finished{startedAt: r.startedAt, finishedAt: at}
}
