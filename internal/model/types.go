// Package model defines shared data structures.
package model

import "time"

// Config defines resolved host settings.
type Config struct {
	TickInterval  time.Duration
	BlinkInterval time.Duration
	Mouse         bool
	Seed          int64
	LogLevel      string
	LogFile       string
}

// RoundResult captures a round after it has been stopped.
type RoundResult struct {
	ID        string
	Sentence  string
	Typed     int
	Elapsed   time.Duration
	WPM       int
	Accuracy  float64
	Completed bool
	TimedOut  bool
}
