package log

import (
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// String returns the lowercase level name. Levels between the named ones
// use the [slog.Level] form, such as "INFO+2".
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return slog.Level(l).String()
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names yield
// [DefaultLevel].
func (l *Level) UnmarshalText(text []byte) error {
	*l = ParseLevel(string(text))

	return nil
}

// Levels returns an iterator over the named log levels, most verbose first.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
			if !yield(l.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a level name, case-insensitively. Besides the named
// levels it accepts anything [slog.Level.UnmarshalText] does, such as
// "warn+1". Unknown names yield [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format is the encoding of log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatJSON

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names yield
// [DefaultFormat].
func (f *Format) UnmarshalText(text []byte) error {
	*f = ParseFormat(string(text))

	return nil
}

// Formats returns an iterator over the log formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range []Format{FormatJSON, FormatText} {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat parses "json" or "text". Anything else yields
// [DefaultFormat].
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return DefaultFormat
	}
}

// FormatTime formats a log timestamp. An empty result omits the timestamp.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default timestamp layout.
const DefaultTimeLayout = time.RFC3339

// DefaultCaller is the default for including the call site.
const DefaultCaller = false

// DefaultPretty is the default for colorized output.
const DefaultPretty = true

// config holds the settings of a Logger. The mutex is shared by copies made
// with the same Logger and replaced by [config.clone].
type config struct {
	mutex      *sync.RWMutex
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

func makeConfig(w io.Writer, opts ...Option) config {
	c := config{mutex: &sync.RWMutex{}}

	return apply(apply(c, WithDefaults(w)), opts...)
}

// clone returns a copy of c with its own mutex and opts applied.
func (c config) clone(opts ...Option) config {
	c.mutex = &sync.RWMutex{}

	return apply(c, opts...)
}

// replaceAttr formats the built-in time and level attributes.
func (c config) replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			s := c.formatTime(t)
			if s == "" {
				return slog.Attr{}
			}

			a.Value = slog.StringValue(s)
		}

	case slog.LevelKey:
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToUpper(Level(l).String()))
		}
	}

	return a
}

// handler returns the slog handler for c.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       slog.Level(c.level),
		ReplaceAttr: c.replaceAttr,
	}

	switch {
	case c.format != FormatText && c.format != FormatJSON:
		return slog.DiscardHandler

	case c.pretty:
		return newPrettyHandler(c.output, opts, c.format == FormatJSON)

	case c.format == FormatJSON:
		return slog.NewJSONHandler(c.output, opts)

	default:
		return slog.NewTextHandler(c.output, opts)
	}
}

// timeLayout maps named layouts, compared lowercase with everything but
// letters and digits removed, to time package layouts.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"ms":          time.StampMilli,
	"stampmicro":  time.StampMicro,
	"us":          time.StampMicro,
	"stampnano":   time.StampNano,
	"ns":          time.StampNano,
	"none":        "",
}

func makeFormatTimeFunc(layout string) FormatTime {
	key := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return -1
	}, strings.ToLower(layout))

	if key == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[key]; ok {
		layout = std
	}

	if layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
