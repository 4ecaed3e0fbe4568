package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ardnew/humandate/lang"
)

// Eval evaluates an expr-lang expression over resolved phrases, such as
//
//	days("today", "first day of next month") > 10
//	when("next friday at 17:00").Sub(now).Hours()
type Eval struct {
	Output     string   `default:"text" enum:"text,json,yaml" help:"Output format (${enum})" short:"o"`
	Indent     int      `default:"2"                          help:"Indent width of JSON and YAML output" short:"i"`
	Expression []string `arg:""         help:"Expression to evaluate"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context, ref *Reference) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source := strings.TrimSpace(strings.Join(e.Expression, " "))
	if source == "" {
		return ErrNoInput
	}

	now, err := ref.Instant(ctx, time.Now())
	if err != nil {
		return err
	}

	result, err := lang.Evaluate(ctx, source, now, ref.Options()...)
	if err != nil {
		return ErrEvaluate.Wrap(err).With(slog.String("expression", source))
	}

	out := streamsFrom(ctx).out

	switch e.Output {
	case "json":
		err = lang.FormatJSON(ctx, out, result, e.Indent)
	case "yaml":
		err = lang.FormatYAML(ctx, out, result, e.Indent)
	default:
		_, err = fmt.Fprintln(out, FormatResult(result))
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// FormatResult formats an evaluation result for display. Instants use
// RFC 3339.
func FormatResult(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
