package lang

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/expr-lang/expr"
)

var (
	ErrExprCompile  = NewError("expression compilation failed")
	ErrExprEvaluate = NewError("expression evaluation failed")
)

// Env returns the evaluation environment of [Evaluate]. Every function
// resolves its text argument against now with opts:
//
//	now              time.Time  the reference instant in UTC
//	week_start       string     "sunday" or "monday"
//	when(text)       time.Time  text resolved; time-only values fall on now's date
//	date(text)       string     text resolved, formatted as by [Value.String]
//	kind(text)       string     "datetime", "date", or "time"
//	days(from, to)   int        whole days from one text's date to another's
//	weekday(text)    string     lowercase weekday name of text's date
func Env(ctx context.Context, now civil.DateTime, opts ...Option) map[string]any {
	o := makeOptions(opts...)
	ref := now.In(time.UTC)

	value := func(text string) (Value, error) {
		e, err := parseAST(ctx, text, o)
		if err != nil {
			return Value{}, err
		}

		return resolve(ctx, e, now, o)
	}

	return map[string]any{
		"now":        ref,
		"week_start": o.config.WeekStart.String(),

		"when": func(text string) (time.Time, error) {
			v, err := value(text)
			if err != nil {
				return time.Time{}, err
			}

			return v.In(time.UTC, ref), nil
		},

		"date": func(text string) (string, error) {
			v, err := value(text)
			if err != nil {
				return "", err
			}

			return v.String(), nil
		},

		"kind": func(text string) (string, error) {
			v, err := value(text)
			if err != nil {
				return "", err
			}

			return v.Kind.String(), nil
		},

		"days": func(from, to string) (int, error) {
			a, err := value(from)
			if err != nil {
				return 0, err
			}

			b, err := value(to)
			if err != nil {
				return 0, err
			}

			if a.Kind == KindTime {
				a.Date = now.Date
			}

			if b.Kind == KindTime {
				b.Date = now.Date
			}

			return b.Date.DaysSince(a.Date), nil
		},

		"weekday": func(text string) (string, error) {
			v, err := value(text)
			if err != nil {
				return "", err
			}

			if v.Kind == KindTime {
				v.Date = now.Date
			}

			return weekdayName(weekdayOf(v.Date)), nil
		},
	}
}

// EnvKeys returns the sorted names defined by [Env].
func EnvKeys() []string {
	env := Env(context.Background(), civil.DateTime{Date: civil.Date{Year: 1970, Month: 1, Day: 1}})

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Evaluate compiles source as an expr-lang expression and runs it in [Env].
func Evaluate(
	ctx context.Context,
	source string,
	now civil.DateTime,
	opts ...Option,
) (any, error) {
	env := Env(ctx, now, opts...)

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).With(slog.String("source", source))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).With(slog.String("source", source))
	}

	return result, nil
}
