package cli

import (
	"context"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/humandate/cli/cmd"
	"github.com/ardnew/humandate/log"
	"github.com/ardnew/humandate/pkg"
)

// CLI is the top-level command-line interface.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Ref cmd.Reference `embed:""`

	Parse cmd.Parse `cmd:"" default:"withargs" help:"Resolve a phrase (default)"`
	AST   cmd.AST   `cmd:"" help:"Print the expression tree of a phrase" name:"ast"`
	Eval  cmd.Eval  `cmd:"" help:"Evaluate an expression over resolved phrases"`
	Repl  cmd.Repl  `cmd:"" help:"Resolve phrases interactively"`
	Init  cmd.Init  `cmd:"" help:"Write the current flags to the configuration file"`
}

// Run parses args and executes the selected command. The exit function is
// called with the exit code when parsing ends the program, such as for
// --help or --version.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := pkg.MkdirAll(); err != nil {
		return err
	}

	yamlPath := pkg.ConfigPath(pkg.BaseConfig + ".yaml")

	vars := kong.Vars{
		"version":            pkg.Version,
		cmd.ConfigIdentifier: yamlPath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Results go to stdout, so messages go to stderr.
	log.Config(log.WithOutput(os.Stderr))

	// Apply logger flags before parsing so that parse errors are reported
	// in the selected format.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.Bind(&cli.Ref),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, pkg.ConfigPath(pkg.BaseConfig+".json")),
		kong.Configuration(resolve(ctx), yamlPath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
