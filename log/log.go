package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger is a concurrency-safe leveled logger. The zero Logger discards
// every message.
type Logger struct {
	*slog.Logger
	config
}

// Make returns a Logger writing to w with the default settings, overridden
// by opts.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{config: cfg, Logger: slog.New(cfg.handler())}
}

// Wrap returns a copy of l with opts applied. Attributes added with
// [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.mutex != nil {
		l.mutex.RLock()
		defer l.mutex.RUnlock()
	}

	cfg := l.clone(opts...)

	return Logger{config: cfg, Logger: slog.New(cfg.handler())}
}

// With returns a copy of l that adds attrs to every message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	l.mutex.RLock()
	cfg := l.clone()
	l.mutex.RUnlock()

	return Logger{config: cfg, Logger: slog.New(l.Handler().WithAttrs(attrs))}
}

// Level returns the minimum logged level.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// Format returns the message format.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.format
}

// TraceContext logs at [LevelTrace].
func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelTrace, msg, attrs...)
}

// Trace logs at [LevelTrace] with [DefaultContextProvider].
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelTrace, msg, attrs...)
}

// DebugContext logs at [LevelDebug].
func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelDebug, msg, attrs...)
}

// Debug logs at [LevelDebug] with [DefaultContextProvider].
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelDebug, msg, attrs...)
}

// InfoContext logs at [LevelInfo].
func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelInfo, msg, attrs...)
}

// Info logs at [LevelInfo] with [DefaultContextProvider].
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelInfo, msg, attrs...)
}

// WarnContext logs at [LevelWarn].
func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelWarn, msg, attrs...)
}

// Warn logs at [LevelWarn] with [DefaultContextProvider].
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelWarn, msg, attrs...)
}

// ErrorContext logs at [LevelError].
func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, LevelError, msg, attrs...)
}

// Error logs at [LevelError] with [DefaultContextProvider].
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), LevelError, msg, attrs...)
}

// log writes one record on behalf of the caller of an exported method.
func (l Logger) log(ctx context.Context, level Level, msg string, attrs ...slog.Attr) {
	l.logDepth(ctx, 2, level, msg, attrs...)
}

// logDepth writes one record attributed to the frame skip levels above
// logDepth.
func (l Logger) logDepth(ctx context.Context, skip int, level Level, msg string, attrs ...slog.Attr) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	var pcs [1]uintptr

	// Skip runtime.Callers and logDepth itself.
	runtime.Callers(2+skip, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)

	_ = l.Handler().Handle(ctx, r)
}
