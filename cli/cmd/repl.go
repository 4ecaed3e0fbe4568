package cmd

import (
	"context"
	"time"

	"github.com/ardnew/humandate/cli/cmd/repl"
	"github.com/ardnew/humandate/log"
)

// Repl starts an interactive session that resolves phrases as they are
// typed.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, ref *Reference) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	now, err := ref.Instant(ctx, time.Now())
	if err != nil {
		return err
	}

	session := repl.Session{
		Now:    now,
		Config: ref.Config(),
		Logger: log.Default(),
	}

	return repl.Run(ctx, session, kongVar(ctx, CacheIdentifier))
}
