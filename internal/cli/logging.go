package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger writes to path, or nowhere when path is empty: the screen
// belongs to the list.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level // info
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
	}

	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return newTextLogger(f, lvl), func() { f.Close() }, nil
}

func newTextLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
