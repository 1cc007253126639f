package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"academic-assistant/internal/domain"
)

// AppLogger implements the domain.Logger interface
type AppLogger struct {
	logger *slog.Logger
}

// NewLogger creates a new logger instance writing to stdout
func NewLogger(levelStr string) domain.Logger {
	return NewLoggerWithWriter(os.Stdout, levelStr)
}

// NewLoggerWithWriter creates a logger writing text records to w
func NewLoggerWithWriter(w io.Writer, levelStr string) domain.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(levelStr),
	})
	return &AppLogger{logger: slog.New(handler)}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.logger.Info(msg, fields...)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	allFields := append([]interface{}{"error", err}, fields...)
	l.logger.Error(msg, allFields...)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.logger.Debug(msg, fields...)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.logger.Warn(msg, fields...)
}

// parseLogLevel converts string log level to a slog level
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
