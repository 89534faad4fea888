package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/tsawler/giftcsv/config"
)

// newLogger creates a *slog.Logger writing to w.
//
// Format "json" produces structured JSON output; anything else produces
// human-readable text. Level is one of: debug, info, warn, error
// (case-insensitive); defaults to info.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
