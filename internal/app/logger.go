package app

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger builds a slog.Logger writing to w. level accepts any name
// slog.Level understands ("debug", "WARN", "info+2"); format is "text" or
// "json". Every record carries the running sim's name.
func NewLogger(level, format, sim string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	case "text", "":
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("invalid log format %q: want text or json", format)
	}

	l := slog.New(handler)
	if sim != "" {
		l = l.With("sim", sim)
	}
	return l, nil
}
