// Package logging provides structured logging for Warden, built on log/slog
// with optional redaction of personal information in logged values. A
// moderation service logs fragments of user content constantly; redaction
// keeps raw PII out of the log stream.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format is the output format for logs.
type Format string

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = "json"
	// FormatText outputs logs in plain text format.
	FormatText Format = "text"
)

// Config contains configuration for the Logger.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string

	// Format is the output format ("json", "text").
	Format string

	// AddSource includes file and line number in log records.
	AddSource bool

	// RedactContent enables redaction of personal-information shapes in
	// logged string values.
	RedactContent bool

	// Writer is the output writer (defaults to os.Stdout).
	Writer io.Writer
}

// Logger wraps slog with level management and content redaction. The level
// can be changed at runtime, which the config watcher uses to apply
// log-level changes without a restart.
type Logger struct {
	slog     *slog.Logger
	redactor *Redactor
	level    *slog.LevelVar
	format   Format
}

// New creates a new Logger with the given configuration.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid log format: %w", err)
	}

	writer := cfg.Writer
	if writer == nil {
		writer = os.Stdout
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	opts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch format {
	case FormatText:
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	var redactor *Redactor
	if cfg.RedactContent {
		redactor = NewRedactor()
	}

	return &Logger{
		slog:     slog.New(handler),
		redactor: redactor,
		level:    levelVar,
		format:   format,
	}, nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, l.redactArgs(args)...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, l.redactArgs(args)...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, l.redactArgs(args)...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, l.redactArgs(args)...)
}

// With returns a logger with additional fields attached.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:     l.slog.With(l.redactArgs(args)...),
		redactor: l.redactor,
		level:    l.level,
		format:   l.format,
	}
}

// Slog exposes the underlying slog.Logger for packages that take one
// directly. Redaction does not apply on this path.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// SetLevel changes the minimum log level at runtime.
func (l *Logger) SetLevel(levelStr string) error {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return err
	}
	l.level.Set(level)
	return nil
}

// redactArgs applies redaction to string argument values when enabled.
func (l *Logger) redactArgs(args []any) []any {
	if l.redactor == nil {
		return args
	}
	return l.redactor.RedactArgs(args...)
}

// ParseLevel parses a log level string into a slog.Level.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "debug", "DEBUG":
		return slog.LevelDebug, nil
	case "info", "INFO", "":
		return slog.LevelInfo, nil
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn, nil
	case "error", "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// parseFormat parses a log format string into a Format.
func parseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "json", "JSON", "":
		return FormatJSON, nil
	case "text", "TEXT":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format: %s", formatStr)
	}
}
