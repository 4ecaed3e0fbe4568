package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// FormatJSON writes v as JSON to the writer. The value is first converted
// with [Native]. An indent of zero produces compact output.
func FormatJSON(_ context.Context, w io.Writer, v any, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(Native(v), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(Native(v))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes v as YAML to the writer. The value is first converted
// with [Native]. An indent of zero produces flow style.
func FormatYAML(ctx context.Context, w io.Writer, v any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, Native(v), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// catchWrite runs fn and returns the error of any write that panicked
// through [writer]. Other panics are re-raised.
func catchWrite(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}

			err = e
		}
	}()

	fn()

	return nil
}
