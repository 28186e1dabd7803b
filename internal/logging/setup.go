package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/jmylchreest/slog-logfilter"
)

// Setup configures the logger with the given level and format.
// Formats: "json" (default, recommended for cron/k8s capture), "text" (logfmt style)
// Report output goes to stdout separately; logs share stdout as structured records.
func Setup(logLevel string, format string) *slog.Logger {
	level := parseLevel(logLevel)

	opts := []logfilter.Option{
		logfilter.WithLevel(level),
		logfilter.WithOutput(os.Stderr),
	}

	if format == "text" {
		opts = append(opts, logfilter.WithFormat("text"))
	} else {
		opts = append(opts, logfilter.WithFormat("json"))
	}

	logger := logfilter.New(opts...)
	slog.SetDefault(logger)
	return logger
}

func SetLevel(level slog.Level) {
	logfilter.SetLevel(level)
}

// AddComponentFilter raises a single component to debug without changing the
// global level, e.g. just the chronos client during an incident.
func AddComponentFilter(component string) {
	logfilter.AddFilter(logfilter.LogFilter{
		Type:    "component",
		Pattern: component,
		Level:   "debug",
		Enabled: true,
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
