package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/humandate/log"
)

// logFormat configures the logger format as a side effect of parsing.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler. Kong calls it as the
// flag is parsed, so the format applies to errors reported while parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"warn" enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"text" enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"none"                         help:"Set timestamp format (RFC3339, Kitchen, none, ...)."`
	Caller     bool      `default:"false"                        help:"Include caller information."                         negatable:""`
	Pretty     bool      `default:"true"                         help:"Enable colorized pretty printing."                   negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed logger setting.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time_layout", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// logFlag applies one logger flag found by [logConfig.scan]. Boolean flags
// are negated by their "--no-" form.
type logFlag struct {
	boolean bool
	apply   func(f *logConfig, value string)
}

var logFlags = map[string]logFlag{
	"level": {apply: func(f *logConfig, value string) {
		_ = f.Level.UnmarshalText([]byte(value))
	}},
	"format": {apply: func(f *logConfig, value string) {
		_ = f.Format.UnmarshalText([]byte(value))
	}},
	"time-layout": {apply: func(f *logConfig, value string) {
		f.TimeLayout = value
		log.Config(log.WithTimeLayout(value))
	}},
	"caller": {boolean: true, apply: func(f *logConfig, value string) {
		f.Caller, _ = strconv.ParseBool(value)
		log.Config(log.WithCaller(f.Caller))
	}},
	"pretty": {boolean: true, apply: func(f *logConfig, value string) {
		f.Pretty, _ = strconv.ParseBool(value)
		log.Config(log.WithPretty(f.Pretty))
	}},
}

// scan applies the logger flags in args before Kong parses them, so the
// logger is configured regardless of flag position. Boolean flags never go
// through a TextUnmarshaler, so this is the only early hook they get.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		name, negated := strings.CutPrefix(arg, "--no-log-")
		if !negated {
			var ok bool
			if name, ok = strings.CutPrefix(arg, "--log-"); !ok {
				continue
			}
		}

		name, value, assigned := strings.Cut(name, "=")

		flag, ok := logFlags[name]
		if !ok || (negated && !flag.boolean) {
			continue
		}

		switch {
		case flag.boolean && !assigned:
			value = "true"
		case flag.boolean:
			if _, err := strconv.ParseBool(value); err != nil {
				continue
			}
		case !assigned:
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				continue
			}

			i++
			value = args[i]
		}

		if negated {
			b, _ := strconv.ParseBool(value)
			value = strconv.FormatBool(!b)
		}

		flag.apply(f, value)
	}
}
