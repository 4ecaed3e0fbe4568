package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}
	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}
	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}
	if !logger.config.pretty {
		t.Error("expected pretty enabled by default")
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelError))
	logger2.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is error")
	}

	logger2.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at error level")
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))

		logger.Info("resolved", slog.String("text", "next friday"), slog.Int("days", 4))

		var rec map[string]any
		if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
			t.Fatalf("output is not JSON: %v: %s", err, buf.String())
		}

		if rec["msg"] != "resolved" || rec["text"] != "next friday" || rec["days"] != float64(4) {
			t.Errorf("unexpected record: %v", rec)
		}
		if rec["level"] != "INFO" {
			t.Errorf("expected level INFO, got %v", rec["level"])
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatText), WithPretty(false), WithTimeLayout("none"))

		logger.Info("resolved", slog.String("kind", "date"))

		want := "level=INFO msg=resolved kind=date\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(Format(9)))

		logger.Error("dropped")

		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

func TestLogger_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true), WithPretty(false), WithFormat(FormatText))

	logger.Info("with caller")

	if !strings.Contains(buf.String(), "source=") || !strings.Contains(buf.String(), "log_test.go:") {
		t.Errorf("expected source in this file, got: %s", buf.String())
	}

	buf.Reset()
	logger.With(slog.String("k", "v")).WarnContext(context.Background(), "nested")

	if !strings.Contains(buf.String(), "log_test.go:") {
		t.Errorf("expected source in this file, got: %s", buf.String())
	}
}

func TestLogger_Wrap_KeepsLevelAndChangesOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := Make(&first, WithLevel(LevelWarn), WithPretty(false))

	wrapped := logger.Wrap(WithOutput(&second))
	wrapped.Info("filtered")
	wrapped.Warn("kept")

	if first.Len() != 0 {
		t.Errorf("original output written: %s", first.String())
	}
	if strings.Contains(second.String(), "filtered") || !strings.Contains(second.String(), "kept") {
		t.Errorf("unexpected wrapped output: %s", second.String())
	}
	if logger.Level() != LevelWarn || wrapped.Level() != LevelWarn {
		t.Errorf("levels changed: %v %v", logger.Level(), wrapped.Level())
	}
}

func TestLogger_AllLevels_LogSuccessfully(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...slog.Attr)
		level   string
	}{
		{"trace", Logger.Trace, "TRACE"},
		{"debug", Logger.Debug, "DEBUG"},
		{"info", Logger.Info, "INFO"},
		{"warn", Logger.Warn, "WARN"},
		{"error", Logger.Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(LevelTrace), WithFormat(FormatText))

			tt.logFunc(logger, "test message")

			output := buf.String()
			if !strings.Contains(output, "test message") {
				t.Errorf("expected %s message to be logged", tt.name)
			}
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected output to contain level %q, got: %s", tt.level, output)
			}
		})
	}
}

func TestLogger_ContextMethods_LogSuccessfully(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, context.Context, string, ...slog.Attr)
	}{
		{"trace", Logger.TraceContext},
		{"debug", Logger.DebugContext},
		{"info", Logger.InfoContext},
		{"warn", Logger.WarnContext},
		{"error", Logger.ErrorContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(LevelTrace))

			tt.logFunc(logger, context.Background(), "test message")

			if !strings.Contains(buf.String(), "test message") {
				t.Errorf("expected %s message to be logged", tt.name)
			}
		})
	}
}

func TestLogger_ConcurrentCalls_ThreadSafe(t *testing.T) {
	var buf syncBuffer
	logger := Make(&buf, WithPretty(false))

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("concurrent message", slog.Int("id", id))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false)).With(slog.String("now", "2024-01-15T12:00:00"))

	logger.Info("first")
	logger.Info("second")

	if got := strings.Count(buf.String(), `"now":"2024-01-15T12:00:00"`); got != 2 {
		t.Errorf("expected attribute on both messages, got %d: %s", got, buf.String())
	}
}

func TestLogger_ZeroValue_Safety(t *testing.T) {
	var l Logger

	l.Trace("test")
	l.Debug("test")
	l.Info("test")
	l.Warn("test")
	l.Error("test")

	if l2 := l.With(slog.String("key", "value")); l2.Logger != nil {
		t.Error("expected nil logger from zero value With")
	}
	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Errorf("zero value reports %v %v", l.Level(), l.Format())
	}
}

func TestLogger_WithTimeLayout_None_OmitsTime(t *testing.T) {
	var buf bytes.Buffer
	l := Make(&buf, WithTimeLayout("none"), WithPretty(false))

	l.Info("test")

	if strings.Contains(buf.String(), `"time"`) {
		t.Errorf("expected no time field, got: %s", buf.String())
	}
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func BenchmarkLogger_Info(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false))

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		logger.Info("benchmark message", slog.Int("iteration", i))
	}
}

func BenchmarkLogger_Info_Pretty(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf)

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		logger.Info("benchmark message", slog.Int("iteration", i))
	}
}
