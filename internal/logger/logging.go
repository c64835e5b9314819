// Package logger builds charmbracelet/log loggers for the different parts of wordfreq.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordfreq/pkg/config"
	"github.com/charmbracelet/log"
)

// New creates a prefixed charm log that follows the global log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a prefixed charm log writing to w with the given log config.
func NewWithConfig(w io.Writer, prefix string, cfg config.LogConfig) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           ParseLevel(cfg.Level),
		ReportTimestamp: cfg.Timestamp,
		Formatter:       ParseFormatter(cfg.Formatter),
	})
}

// Configure applies the log config to the package level charm logger.
func Configure(cfg config.LogConfig) {
	log.SetLevel(ParseLevel(cfg.Level))
	log.SetReportTimestamp(cfg.Timestamp)
	log.SetFormatter(ParseFormatter(cfg.Formatter))
}

// ParseLevel maps a config level name to a log level, falling back to info.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ParseFormatter maps "text", "json" or "logfmt" to a formatter. Unknown names get text.
func ParseFormatter(name string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
