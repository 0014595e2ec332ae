package bootstrap

import (
	"io"
	"log/slog"
	"strings"
)

type LogOptions struct {
	Level  string
	Format string
}

// NewLogger builds the process logger. Format "json" selects the JSON handler,
// anything else the text handler.
func NewLogger(w io.Writer, opt LogOptions) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opt.Level)}

	var handler slog.Handler
	if strings.EqualFold(opt.Format, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
