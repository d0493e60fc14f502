package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger writing to outW. levelStr accepts
// the slog level names (debug, info, warn, error); anything else means info.
// formatStr "json" selects the JSON handler, anything else the text handler.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}

	return slog.New(slog.NewTextHandler(outW, opts))
}
