package logger

import (
	"io"
	"log/slog"
)

// New returns a configured slog.Logger writing text records to w.
// When verbose is true, the logger emits debug-level logs; otherwise info-level.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
