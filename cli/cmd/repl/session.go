package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/ardnew/humandate/lang"
	"github.com/ardnew/humandate/log"
)

// Session is the state a REPL resolves against.
type Session struct {
	Now    civil.DateTime
	Config lang.Config
	Logger log.Logger
}

func (s Session) options() []lang.Option {
	return []lang.Option{lang.WithConfig(s.Config), lang.WithLogger(s.Logger)}
}

// Resolve returns the value of text.
func (s Session) Resolve(ctx context.Context, text string) (lang.Value, error) {
	return lang.ParseContext(ctx, text, s.Now, s.options()...)
}

// reply is the outcome of a control command.
type reply struct {
	text  string
	err   error
	clear bool
	quit  bool
}

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  now [WHEN]         Print or set the reference instant
  week [sunday|monday]
                     Print or set the first day of the week
  ast TEXT           Print the expression tree of a phrase
  expr EXPRESSION    Evaluate an expression (try: when("next friday"))
  help               Print this message
  clear              Clear screen
  quit               Exit REPL

Usage:
  Type a phrase; its value is shown as you type and printed on Enter
  Press Tab / Shift-Tab to cycle through completions
  Press Esc to toggle between phrase and command modes
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// exec runs the control command in input and returns the session it
// leaves behind.
func (s Session) exec(ctx context.Context, input string) (Session, reply) {
	command, args, _ := strings.Cut(strings.TrimSpace(input), " ")
	args = strings.TrimSpace(args)

	s.Logger.TraceContext(ctx, "repl command",
		slog.String("command", command),
		slog.String("args", args))

	switch command {
	case "q", "quit", "exit":
		return s, reply{quit: true}

	case "h", "help":
		return s, reply{text: helpMessage()}

	case "c", "clear":
		return s, reply{clear: true}

	case "now":
		if args != "" {
			now, err := lang.ParseInstant(ctx, args, s.Now, s.options()...)
			if err != nil {
				return s, reply{err: err}
			}

			s.Now = now
		}

		return s, reply{text: "now " + lang.DateTimeValue(s.Now).String()}

	case "week":
		if args != "" {
			if err := s.Config.WeekStart.UnmarshalText([]byte(args)); err != nil {
				return s, reply{err: err}
			}
		}

		return s, reply{text: "week starts " + s.Config.WeekStart.String()}

	case "ast":
		if args == "" {
			return s, reply{err: fmt.Errorf("%w: ast TEXT", ErrUsage)}
		}

		e, err := lang.ParseAST(args, s.options()...)
		if err != nil {
			return s, reply{err: err}
		}

		return s, reply{text: e.String()}

	case "expr":
		if args == "" {
			return s, reply{err: fmt.Errorf("%w: expr EXPRESSION", ErrUsage)}
		}

		result, err := lang.Evaluate(ctx, args, s.Now, s.options()...)
		if err != nil {
			return s, reply{err: err}
		}

		return s, reply{text: formatResult(result)}

	default:
		return s, reply{err: fmt.Errorf("%w: %s (try 'help')", ErrUnknown, command)}
	}
}

func formatResult(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
