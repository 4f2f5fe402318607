// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// New returns a logger writing text to console at level. When file is
// non-nil, records are also written there as JSON at debug level.
func New(console io.Writer, level slog.Level, file io.Writer) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}),
	}
	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}
	return slog.New(handler)
}

// Setup builds the logger for the CLI and installs it as the slog default.
// The returned close function releases the log file, if any.
func Setup(level slog.Level, logFile string) (*slog.Logger, func() error, error) {
	closeFn := func() error { return nil }

	var file io.Writer
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, closeFn, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("opening log file: %w", err)
		}
		file = f
		closeFn = f.Close
	}

	logger := New(os.Stderr, level, file)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
