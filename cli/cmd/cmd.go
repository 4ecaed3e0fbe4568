package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alecthomas/kong"

	"github.com/ardnew/humandate/lang"
	"github.com/ardnew/humandate/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable name, or "" without a kong context.
func kongVar(ctx context.Context, name string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[name]
}

type (
	streamsKey struct{}
	streams    struct {
		in  io.Reader
		out io.Writer
	}
)

// WithStreams returns a new context.Context whose commands read phrases from
// in and write results to out.
func WithStreams(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, streams{in: in, out: out})
}

func streamsFrom(ctx context.Context) streams {
	s, _ := ctx.Value(streamsKey{}).(streams)

	if s.in == nil {
		s.in = os.Stdin
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	return s
}

// Reference holds the flags shared by every command that resolves phrases.
type Reference struct {
	Now       string         `help:"Reference instant: a date-time, date, time, or phrase (default: local time)" placeholder:"WHEN"    short:"n"`
	WeekStart lang.WeekStart `default:"sunday"                                                                  help:"First day of the week for ordinal days (sunday, monday)" short:"w"`
}

// Config returns the resolution settings selected by the flags.
func (r *Reference) Config() lang.Config {
	cfg := lang.DefaultConfig()
	cfg.WeekStart = r.WeekStart

	return cfg
}

// Options returns the options of every resolution made by a command.
func (r *Reference) Options() []lang.Option {
	return []lang.Option{
		lang.WithConfig(r.Config()),
		lang.WithLogger(log.Default()),
	}
}

// Instant returns the reference instant. Without --now it is wall truncated
// to whole seconds; otherwise --now is resolved against that.
func (r *Reference) Instant(ctx context.Context, wall time.Time) (civil.DateTime, error) {
	now := civil.DateTimeOf(wall)
	now.Time.Nanosecond = 0

	if strings.TrimSpace(r.Now) == "" {
		return now, nil
	}

	dt, err := lang.ParseInstant(ctx, r.Now, now, r.Options()...)
	if err != nil {
		return civil.DateTime{}, ErrInvalidNow.
			Wrap(err).
			With(slog.String("now", r.Now))
	}

	log.DebugContext(ctx, "reference instant",
		slog.String("now", dt.String()),
		slog.String("week_start", r.WeekStart.String()))

	return dt, nil
}

// phrase joins command-line words into one phrase. It returns "" when the
// words are empty or a lone "-".
func phrase(words []string) string {
	text := strings.TrimSpace(strings.Join(words, " "))
	if text == "-" {
		return ""
	}

	return text
}
