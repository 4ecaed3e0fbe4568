package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/ardnew/humandate/lang"
	"github.com/ardnew/humandate/log"
)

// Parse resolves a phrase and prints its value.
type Parse struct {
	Output string   `default:"text" enum:"text,json,yaml" help:"Output format (${enum})" short:"o"`
	Indent int      `default:"2"                          help:"Indent width of JSON and YAML output" short:"i"`
	Text   []string `arg:""         help:"Phrase to resolve, or '-' to read one phrase per line from stdin" optional:""`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context, ref *Reference) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	now, err := ref.Instant(ctx, time.Now())
	if err != nil {
		return err
	}

	s := streamsFrom(ctx)

	if text := phrase(p.Text); text != "" {
		return p.resolve(ctx, s.out, text, now, ref)
	}

	failed := 0
	scanner := bufio.NewScanner(s.in)

	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if err := p.resolve(ctx, s.out, text, now, ref); err != nil {
			log.ErrorContext(ctx, "resolve failed", slog.Any("error", err))

			failed++
		}
	}

	if err := scanner.Err(); err != nil {
		return ErrReadInput.Wrap(err)
	}

	if failed > 0 {
		return ErrResolve.With(slog.Int("failed", failed))
	}

	return nil
}

func (p *Parse) resolve(
	ctx context.Context,
	w io.Writer,
	text string,
	now civil.DateTime,
	ref *Reference,
) error {
	v, err := lang.ParseContext(ctx, text, now, ref.Options()...)
	if err != nil {
		return ErrResolve.Wrap(err).With(slog.String("text", text))
	}

	switch p.Output {
	case "json":
		err = lang.FormatJSON(ctx, w, v, p.Indent)
	case "yaml":
		err = lang.FormatYAML(ctx, w, v, p.Indent)
	default:
		_, err = fmt.Fprintln(w, v)
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
