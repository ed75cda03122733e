// Package stats contains typing speed and accuracy calculations.
package stats

import (
	"math"
	"time"
)

// charsPerWord is the conventional word length used for WPM.
const charsPerWord = 5.0

// WPM returns whole words per minute for chars typed over elapsed.
// Non-positive durations yield 0.
func WPM(chars int, elapsed time.Duration) int {
	seconds := elapsed.Seconds()
	if seconds <= 0 || chars <= 0 {
		return 0
	}
	words := float64(chars) / charsPerWord
	minutes := seconds / 60.0
	wpm := math.Floor(words / minutes)
	if wpm < 0 || math.IsNaN(wpm) {
		return 0
	}
	if wpm > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(wpm)
}

// Accuracy returns the share of accepted keystrokes in [0, 1].
// With no keystrokes at all the accuracy is 1.
func Accuracy(accepted, rejected int) float64 {
	total := accepted + rejected
	if total <= 0 {
		return 1
	}
	return float64(accepted) / float64(total)
}

// SaturatingSub returns end - start, or zero when end is before start.
func SaturatingSub(end, start time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
