// Package logging builds the structured logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a level name to a slog.Level. Matching ignores case.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want one of %s)", level, strings.Join(Levels, ", "))
	}
}

// BuildLogger creates a text logger writing to w at the given level.
// Unknown levels fall back to info.
func BuildLogger(level string, w io.Writer) *slog.Logger {
	l, _ := ParseLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}
