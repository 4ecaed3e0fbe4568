package log

import (
	"context"
	"log/slog"
	"os"
)

// DefaultContextProvider returns the context used by logging functions
// that do not take one.
var DefaultContextProvider = context.TODO

var defaultLog = Make(os.Stdout)

// Config updates the default logger with opts.
func Config(opts ...Option) {
	defaultLog = defaultLog.Wrap(opts...)
}

// Default returns the default logger.
func Default() Logger { return defaultLog }

// TraceContext logs at [LevelTrace] using the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(ctx, 1, LevelTrace, msg, attrs...)
}

// Trace logs at [LevelTrace] using the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(DefaultContextProvider(), 1, LevelTrace, msg, attrs...)
}

// DebugContext logs at [LevelDebug] using the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(ctx, 1, LevelDebug, msg, attrs...)
}

// Debug logs at [LevelDebug] using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(DefaultContextProvider(), 1, LevelDebug, msg, attrs...)
}

// InfoContext logs at [LevelInfo] using the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(ctx, 1, LevelInfo, msg, attrs...)
}

// Info logs at [LevelInfo] using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(DefaultContextProvider(), 1, LevelInfo, msg, attrs...)
}

// WarnContext logs at [LevelWarn] using the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(ctx, 1, LevelWarn, msg, attrs...)
}

// Warn logs at [LevelWarn] using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(DefaultContextProvider(), 1, LevelWarn, msg, attrs...)
}

// ErrorContext logs at [LevelError] using the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(ctx, 1, LevelError, msg, attrs...)
}

// Error logs at [LevelError] using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	defaultLog.logDepth(DefaultContextProvider(), 1, LevelError, msg, attrs...)
}

// With returns the default logger with attrs added to every message.
func With(attrs ...slog.Attr) Logger {
	return defaultLog.With(attrs...)
}
