package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/pluqqy/todo-terminal/pkg/models"
)

// ParseLogLevel parses a string log level to a charmbracelet/log Level
func ParseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseLogFormatter parses a string formatter name to a charmbracelet/log Formatter
func ParseLogFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// NewLogger creates a logger writing to w. Command loggers only report
// timestamps when they go to a file.
func NewLogger(w io.Writer, settings models.LoggingSettings) *log.Logger {
	_, toFile := w.(*os.File)
	if w == os.Stderr || w == os.Stdout {
		toFile = false
	}
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLogLevel(settings.Level),
		Formatter:       ParseLogFormatter(settings.Format),
		ReportTimestamp: toFile,
		Prefix:          "todo",
	})
}

// OpenLogFile opens the TUI log file for appending. The TUI owns the
// terminal, so its logs cannot go to stderr.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
