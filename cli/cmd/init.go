package cmd

import (
	"context"
	"encoding"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/humandate/log"
	"github.com/ardnew/humandate/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init writes the current flag values as the YAML configuration file.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, i.values(ktx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	return nil
}

// values returns the set flags of ktx keyed by flag name. Help, version,
// and profiling flags are left out.
func (i *Init) values(ktx *kong.Context) yaml.MapSlice {
	ignore := []string{"help", "version", profile.Tag}

	var values yaml.MapSlice

	for _, flag := range ktx.Flags() {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v := flagValue(ktx.FlagValue(flag)); v != nil {
			values = append(values, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return values
}

// flagValue converts a flag value to a YAML scalar or sequence, or nil if
// it is unset.
func flagValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil

	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return nil
		}

		return string(text)

	case string:
		if v == "" {
			return nil
		}

		return v

	case bool, int, int64, uint, uint64, float64:
		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	default:
		return fmt.Sprint(v)
	}
}
