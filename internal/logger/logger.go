// Package logger provides structured logging for the cleaning tools.
// It wraps log/slog so every stage logs with the same field names (snake_case).
//
// Two output formats are supported:
//   - text (default): key=value lines for the console
//   - json: machine-readable structured logging
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger is the default logger instance.
var Logger *slog.Logger

var (
	output io.Writer = os.Stderr
	level            = new(slog.LevelVar)
	format           = FormatText
)

// Format selects the handler used by Logger.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func init() {
	level.Set(slog.LevelInfo)
	rebuild()
}

func rebuild() {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case FormatJSON:
		Logger = slog.New(slog.NewJSONHandler(output, opts))
	default:
		Logger = slog.New(slog.NewTextHandler(output, opts))
	}
}

// SetLevel configures the logging level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetFormat switches between text and json output.
func SetFormat(f Format) {
	format = f
	rebuild()
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	output = w
	rebuild()
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q", s)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// WithStage returns a logger tagged with the cleaning stage.
func WithStage(stage string) *slog.Logger {
	return Logger.With(slog.String("stage", stage))
}

// LogStageEnd logs the completion of a stage with its row accounting.
// l is expected to carry the stage name, see WithStage.
func LogStageEnd(l *slog.Logger, rowsBefore, rowsAfter int, duration time.Duration) {
	if l == nil {
		l = Logger
	}
	l.Info("stage completed",
		slog.Int("rows_before", rowsBefore),
		slog.Int("rows_after", rowsAfter),
		slog.Int("rows_removed", rowsBefore-rowsAfter),
		slog.Duration("duration", duration),
	)
}
