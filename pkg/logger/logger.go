package logger

import (
	"io"
	"log/slog"
	"os"
)

func SetupGlobal(debug bool, showSource bool, jsonFormat bool) {
	slog.SetDefault(New(os.Stdout, debug, showSource, jsonFormat))
}

func New(w io.Writer, debug bool, showSource bool, jsonFormat bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: showSource,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}
