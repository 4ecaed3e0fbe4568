package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/humandate/log"
)

// resolve returns a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys are flag names. Nested mappings are joined with hyphens, and a
// command's own flags may be nested under the command name:
//
//	log:
//	  level: debug
//	week-start: monday
//	parse:
//	  output: json
//
// applies --log-level=debug, --week-start=monday, and --output=json to the
// parse command. Underscores may stand in for hyphens. Command-line flags
// override configured values. A file that does not parse is ignored with a
// warning.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil && !errors.Is(err, io.EOF) {
			log.WarnContext(ctx, "ignoring invalid configuration",
				slog.Any("error", err))

			return config{}, nil
		}

		cfg := config{}
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

// flatten adds the leaves of m to c, keyed by their hyphen-joined path.
func (c config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		key = strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := value.(type) {
		case map[string]any:
			c.flatten(key, v)
		case nil:
		default:
			c[key] = scalar(v)
		}
	}
}

// scalar returns v in a form Kong's mappers decode. Numbers become strings
// and sequences comma-separated strings.
func scalar(v any) any {
	switch v := v.(type) {
	case bool, string:
		return v
	case time.Time:
		return v.Format("2006-01-02T15:04:05")
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(item)
		}

		return strings.Join(items, ",")
	default:
		return fmt.Sprint(v)
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver]. A flag of a command is looked up
// under the command name before its bare name.
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := strings.ReplaceAll(flag.Name, "_", "-")

	if parent != nil && parent.Command != nil {
		if value, ok := c[parent.Command.Name+"-"+name]; ok {
			return value, nil
		}
	}

	if value, ok := c[name]; ok {
		return value, nil
	}

	return nil, nil //nolint:nilnil
}
