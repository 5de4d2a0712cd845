// Package logger provides the process-wide structured logger.
//
// Generation code logs through the package-level helpers, which are no-ops
// until Initialize is called. Library callers that never initialize the
// logger pay nothing.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level          string `yaml:"level" env:"FORGE_LOG_LEVEL"`
	ConsoleEnabled bool   `yaml:"console_enabled" env:"FORGE_LOG_CONSOLE"`
	ConsoleFormat  string `yaml:"console_format" env:"FORGE_LOG_CONSOLE_FORMAT"`
	FileEnabled    bool   `yaml:"file_enabled" env:"FORGE_LOG_FILE_ENABLED"`
	FilePath       string `yaml:"file_path" env:"FORGE_LOG_FILE_PATH"`
	FileFormat     string `yaml:"file_format" env:"FORGE_LOG_FILE_FORMAT"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultConfig returns console-only text logging at WARN, so generated
// output on stdout stays clean.
func DefaultConfig() Config {
	return Config{
		Level:          "WARN",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/forge.log",
		FileFormat:     "json",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

var (
	logger *slog.Logger
)

// Initialize sets up the logger. Console output goes to console, or to
// stderr when console is nil; stdout is reserved for generated records.
func Initialize(config Config, console io.Writer) error {
	if console == nil {
		console = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLogLevel(config.Level)}

	var handlers []slog.Handler
	if config.ConsoleEnabled {
		h, err := newHandler(console, config.ConsoleFormat, opts)
		if err != nil {
			return fmt.Errorf("console handler: %w", err)
		}
		handlers = append(handlers, h)
	}

	if config.FileEnabled {
		if config.FilePath == "" {
			return errors.New("file logging enabled without file_path")
		}
		logFile := &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.FileMaxSizeMB,
			MaxBackups: config.FileMaxBackups,
			MaxAge:     config.FileMaxAgeDays,
		}
		h, err := newHandler(logFile, config.FileFormat, opts)
		if err != nil {
			return fmt.Errorf("file handler: %w", err)
		}
		handlers = append(handlers, h)
	}

	switch len(handlers) {
	case 0:
		logger = slog.New(slog.NewTextHandler(io.Discard, opts))
	case 1:
		logger = slog.New(handlers[0])
	default:
		logger = slog.New(newMultiHandler(handlers...))
	}
	return nil
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch format {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch level {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "INFO", "info":
		return slog.LevelInfo
	case "WARNING", "WARN", "warning", "warn":
		return slog.LevelWarn
	case "ERROR", "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warning logs a warning message
func Warning(msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}

// multiHandler fans each record out to several handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

// Enabled reports whether any handler accepts the level.
func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle writes to every enabled handler and joins their errors.
func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
