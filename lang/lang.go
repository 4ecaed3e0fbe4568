package lang

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/ardnew/humandate/log"
)

// WeekStart is the first day of the week used when an ordinal counts days
// of a week ("first day of last week").
type WeekStart int

const (
	Sunday WeekStart = iota
	Monday
)

// DefaultWeekStart is the default first day of the week.
const DefaultWeekStart = Sunday

func (w WeekStart) String() string {
	if w == Monday {
		return "monday"
	}

	return "sunday"
}

// MarshalText implements encoding.TextMarshaler.
func (w WeekStart) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the weekday
// names "sunday" and "monday" and their three-letter forms.
func (w *WeekStart) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "sunday", "sun":
		*w = Sunday
	case "monday", "mon":
		*w = Monday
	default:
		return ErrInvalidConfig.With(slog.String("week_start", string(text)))
	}

	return nil
}

// Config controls how expressions are resolved.
type Config struct {
	// WeekStart only affects ordinal days of a week. Lookups such as
	// "next week's friday" always use Monday-based weeks.
	WeekStart WeekStart `json:"week_start" yaml:"week_start"`
	// MaxDepth limits nested expressions; zero means [DefaultMaxDepth].
	MaxDepth int `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{WeekStart: DefaultWeekStart, MaxDepth: DefaultMaxDepth}
}

type options struct {
	config Config
	logger log.Logger
}

// Option configures a single parse or resolve call.
type Option func(*options)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithWeekStart sets [Config.WeekStart].
func WithWeekStart(w WeekStart) Option {
	return func(o *options) { o.config.WeekStart = w }
}

// WithMaxDepth sets [Config.MaxDepth].
func WithMaxDepth(n int) Option {
	return func(o *options) { o.config.MaxDepth = n }
}

// WithLogger sets the logger that traces parsing and resolution. The zero
// Logger discards everything.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func makeOptions(opts ...Option) options {
	o := options{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// normalize lowercases text and trims surrounding white space.
func normalize(text string) string { return strings.ToLower(strings.TrimSpace(text)) }

// Parse resolves text against now with the default configuration.
//
// The result is a date-time, a date, or a time depending on what text names.
// Errors match one of [ErrUnparseable], [ErrProcessing], or [ErrInternal]
// with errors.Is, or [ErrInvalidConfig] if now is not a valid date-time.
func Parse(text string, now civil.DateTime) (Value, error) {
	return ParseContext(context.Background(), text, now)
}

// ParseWithConfig resolves text against now with cfg.
func ParseWithConfig(text string, now civil.DateTime, cfg Config) (Value, error) {
	return ParseContext(context.Background(), text, now, WithConfig(cfg))
}

// ParseContext resolves text against now. The context is only used for
// logging; resolution never blocks.
func ParseContext(
	ctx context.Context,
	text string,
	now civil.DateTime,
	opts ...Option,
) (Value, error) {
	o := makeOptions(opts...)

	e, err := parseAST(ctx, text, o)
	if err != nil {
		return Value{}, err
	}

	return resolve(ctx, e, now, o)
}

// ParseTree returns the syntax tree of text.
func ParseTree(text string) (*Node, error) {
	return parseTree(normalize(text))
}

// ParseAST returns the expression tree of text without resolving it.
func ParseAST(text string, opts ...Option) (Expr, error) {
	return parseAST(context.Background(), text, makeOptions(opts...))
}

func parseAST(ctx context.Context, text string, o options) (Expr, error) {
	source := normalize(text)

	toks, err := tokenize(source)
	if err != nil {
		o.logger.DebugContext(ctx, "tokenize failed",
			slog.String("input", source),
			slog.Any("error", err))

		return nil, err
	}

	o.logger.TraceContext(ctx, "tokenized",
		slog.String("input", source),
		slog.Any("tokens", toks))

	tree, err := parseTokens(source, toks)
	if err != nil {
		o.logger.DebugContext(ctx, "parse failed",
			slog.String("input", source),
			slog.Any("error", err))

		return nil, err
	}

	e, err := buildAST(tree, o.config.MaxDepth)
	if err != nil {
		attrs := []slog.Attr{slog.String("input", source), slog.Any("error", err)}
		if errors.Is(err, ErrUnparseable) {
			o.logger.DebugContext(ctx, "build failed", attrs...)
		} else {
			o.logger.ErrorContext(ctx, "build failed", attrs...)
		}

		return nil, err
	}

	o.logger.TraceContext(ctx, "parse complete",
		slog.String("input", source),
		slog.String("expr", e.String()))

	return e, nil
}

// Resolve returns the value of e relative to now.
func Resolve(
	ctx context.Context,
	e Expr,
	now civil.DateTime,
	opts ...Option,
) (Value, error) {
	return resolve(ctx, e, now, makeOptions(opts...))
}

func resolve(ctx context.Context, e Expr, now civil.DateTime, o options) (Value, error) {
	if !now.IsValid() || !inRange(now.Date.Year) {
		return Value{}, ErrInvalidConfig.With(slog.String("now", now.String()))
	}

	v, err := resolver{ctx: ctx, now: now, cfg: o.config, logger: o.logger}.resolve(e)
	if err != nil {
		o.logger.DebugContext(ctx, "resolve failed",
			slog.String("now", now.String()),
			slog.Any("error", err))

		return Value{}, err
	}

	o.logger.TraceContext(ctx, "resolve complete",
		slog.String("now", now.String()),
		slog.String("kind", v.Kind.String()),
		slog.String("value", v.String()))

	return v, nil
}
