package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/boolean-maybe/todo/config"
)

// ParseLogLevel maps a config level name to a slog.Level.
// Unknown names fall back to error.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// InitLogging installs the configured slog handler on stderr.
func InitLogging(cfg *config.Config) slog.Level {
	return initLoggingTo(os.Stderr, cfg)
}

func initLoggingTo(w io.Writer, cfg *config.Config) slog.Level {
	level := ParseLogLevel(cfg.Logging.Level)
	slog.SetDefault(slog.New(newLogHandler(w, cfg.Logging.Format, level)))
	slog.Debug("logging initialized", "level", level, "format", cfg.Logging.Format)
	return level
}

// newLogHandler returns a text handler, or a charmbracelet/log handler for the "pretty" format.
func newLogHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	if strings.EqualFold(format, "pretty") {
		// charmbracelet/log levels share slog's numeric values
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
		})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}
