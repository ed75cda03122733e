// Package logging builds the zerolog logger used by the host program.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config value to a zerolog level. Empty means info.
func ParseLevel(value string) (zerolog.Level, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", value)
	}
	return level, nil
}

// New opens the log file at path and returns a logger writing to it.
// The terminal belongs to the TUI, so nothing is written to stdout or stderr.
// The returned closer must be called on shutdown.
func New(path, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if lvl == zerolog.Disabled {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewWithWriter(file, lvl), file, nil
}

// NewWithWriter returns a console-formatted logger writing to w.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "2006-01-02T15:04:05.000"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
