// Package logutils builds the process-wide zerolog logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level (debug, info, warn, error, fatal).
// With a file path, JSON lines are appended to that file and the returned
// closer releases it. With an empty path, human-readable output goes to
// stderr so it never mixes with command output on stdout.
func New(level string, file string) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, func() {}, fmt.Errorf("parse log level %q: %w", level, err)
	}

	if file == "" {
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return build(console, lvl), func() {}, nil
	}

	f, err := openLogFile(file)
	if err != nil {
		return zerolog.Logger{}, func() {}, err
	}

	return build(f, lvl), func() { _ = f.Close() }, nil
}

func build(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
