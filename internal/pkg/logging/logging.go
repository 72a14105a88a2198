package logging

import (
	"io"
	"log/slog"
	"strings"
)

const envProduction = "production"

// NewLogger returns a text logger, or a JSON logger when appEnv is production.
func NewLogger(appEnv, logLevel string, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)

	if appEnv == envProduction {
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler)
}

func SetupLogger(appEnv, logLevel string, out io.Writer) {
	slog.SetDefault(NewLogger(appEnv, logLevel, out))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
