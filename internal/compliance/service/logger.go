package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/powergrid/intelligence-api/internal/api/http/middleware"
)

// Logger provides structured logging for services
type Logger struct {
	requestID string
	base      *slog.Logger
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	requestID := middleware.GetRequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{requestID: requestID, base: slog.Default()}
}

func (l *Logger) with(operation string) *slog.Logger {
	return l.base.With("request_id", l.requestID, "operation", operation)
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.with(operation).Error("operation failed", "error", err)
}

// LogInfo logs an info message with context
func (l *Logger) LogInfo(operation string, message string) {
	l.with(operation).Info(message)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.with(operation).Info(fmt.Sprintf(format, args...))
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.with(operation).Warn(fmt.Sprintf(format, args...))
}
