package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/humandate/lang"
)

// AST prints the expression tree or the syntax tree of a phrase without
// resolving it.
type AST struct {
	Output string   `default:"expr" enum:"expr,tree,json,yaml" help:"Output format (${enum})" short:"o"`
	Syntax bool     `help:"Encode the syntax tree instead of the expression tree as JSON or YAML"`
	Indent int      `default:"2" help:"Indent width of JSON and YAML output" short:"i"`
	Text   []string `arg:""      help:"Phrase to parse"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context, ref *Reference) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text := phrase(a.Text)
	if text == "" {
		return ErrNoInput
	}

	out := streamsFrom(ctx).out

	var v any

	if a.Output == "tree" || a.Syntax {
		v, err = lang.ParseTree(text)
	} else {
		v, err = lang.ParseAST(text, ref.Options()...)
	}

	if err != nil {
		return ErrResolve.Wrap(err).With(slog.String("text", text))
	}

	switch a.Output {
	case "tree":
		err = v.(*lang.Node).Print(out)
	case "json":
		err = lang.FormatJSON(ctx, out, v, a.Indent)
	case "yaml":
		err = lang.FormatYAML(ctx, out, v, a.Indent)
	default:
		_, err = fmt.Fprintln(out, v)
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
