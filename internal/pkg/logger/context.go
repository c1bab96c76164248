package logger

import (
	"context"

	"go.uber.org/zap"
)

// Context keys
type contextKey string

const (
	loggerKey       contextKey = "logger"
	sessionIDKey    contextKey = "session_id"
	invocationIDKey contextKey = "invocation_id"
	toolNameKey     contextKey = "tool"
)

// WithContext returns a logger with fields from context
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	fields := make([]zap.Field, 0, 3)

	// Add session ID if present
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok && sessionID != "" {
		fields = append(fields, zap.String("session_id", sessionID))
	}

	// Add invocation ID if present
	if invocationID, ok := ctx.Value(invocationIDKey).(string); ok && invocationID != "" {
		fields = append(fields, zap.String("invocation_id", invocationID))
	}

	// Add tool name if present
	if tool, ok := ctx.Value(toolNameKey).(string); ok && tool != "" {
		fields = append(fields, zap.String("tool", tool))
	}

	if len(fields) == 0 {
		return l
	}

	return l.With(fields...)
}

// FromContext extracts logger from context, returns default logger if not found
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return L()
	}

	if logger, ok := ctx.Value(loggerKey).(*Logger); ok && logger != nil {
		return logger.WithContext(ctx)
	}

	return L().WithContext(ctx)
}

// ToContext adds logger to context
func ToContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithSessionID adds the host session ID to context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithInvocationID adds a tool invocation ID to context
func WithInvocationID(ctx context.Context, invocationID string) context.Context {
	return context.WithValue(ctx, invocationIDKey, invocationID)
}

// WithToolName adds the active tool name to context
func WithToolName(ctx context.Context, tool string) context.Context {
	return context.WithValue(ctx, toolNameKey, tool)
}

// GetSessionID extracts the host session ID from context
func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

// GetInvocationID extracts the tool invocation ID from context
func GetInvocationID(ctx context.Context) string {
	if invocationID, ok := ctx.Value(invocationIDKey).(string); ok {
		return invocationID
	}
	return ""
}

// GetToolName extracts the active tool name from context
func GetToolName(ctx context.Context) string {
	if tool, ok := ctx.Value(toolNameKey).(string); ok {
		return tool
	}
	return ""
}

// Convenience methods for context-aware logging
func DebugContext(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}

func InfoContext(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

func WarnContext(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func ErrorContext(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Error(msg, fields...)
}
