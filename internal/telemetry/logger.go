package telemetry

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON logger writing to w. Debug records are kept only
// when debug is set.
func NewLogger(debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// InitLogger builds a logger with NewLogger and makes it the default.
func InitLogger(debug bool, w io.Writer) *slog.Logger {
	logger := NewLogger(debug, w)
	slog.SetDefault(logger)
	return logger
}
