package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of pretty output. Styles come from a renderer
// bound to the output, so colors are dropped when it is not a terminal.
type palette struct {
	key, text, number, yes, no, duration, when lipgloss.Style
	trace, debug, info, warn, error           lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style { return r.NewStyle().Foreground(lipgloss.Color(c)) }

	return palette{
		key:      fg("8"),
		text:     fg("6"),
		number:   fg("3"),
		yes:      fg("2"),
		no:       fg("1"),
		duration: fg("5"),
		when:     fg("4"),
		trace:    fg("8"),
		debug:    fg("4"),
		info:     fg("2").Bold(true),
		warn:     fg("3").Bold(true),
		error:    fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.error
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// paint renders each line of s separately so that multi-line values are
// not padded to a block.
func paint(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}

	return strings.Join(lines, "\n")
}

// prettyHandler writes human-oriented records: "key=value" pairs on one
// line, or an indented "key: value" block when json is set. Values are not
// quoted.
type prettyHandler struct {
	opts   slog.HandlerOptions
	json   bool
	mu     *sync.Mutex
	w      io.Writer
	color  palette
	prefix string
	attrs  []slog.Attr
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions, json bool) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		json:  json,
		mu:    &sync.Mutex{},
		w:     w,
		color: makePalette(w),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minimum := slog.LevelInfo
	if h.opts.Level != nil {
		minimum = h.opts.Level.Level()
	}

	return level >= minimum
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Clip(h.attrs)

	for _, a := range attrs {
		c.attrs = flatten(c.attrs, h.prefix, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		fields = h.builtin(fields, slog.Time(slog.TimeKey, r.Time))
	}

	fields = h.builtin(fields, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = h.builtin(fields,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	fields = h.builtin(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = flatten(fields, h.prefix, a)

		return true
	})

	var buf bytes.Buffer

	if h.json {
		buf.WriteString("{\n")

		for i, a := range fields {
			if i > 0 {
				buf.WriteString(",\n")
			}

			buf.WriteString("  " + h.color.key.Render(a.Key) + ": " + h.value(a, r.Level))
		}

		buf.WriteString("\n}\n")
	} else {
		for i, a := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(h.color.key.Render(a.Key) + "=" + h.value(a, r.Level))
		}

		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// builtin appends a built-in attribute after ReplaceAttr. An attribute
// replaced by the empty attribute is dropped.
func (h *prettyHandler) builtin(fields []slog.Attr, a slog.Attr) []slog.Attr {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Key == "" {
		return fields
	}

	return append(fields, a)
}

func (h *prettyHandler) value(a slog.Attr, level slog.Level) string {
	v := a.Value

	if a.Key == slog.LevelKey {
		return h.color.level(level).Render(v.String())
	}

	switch v.Kind() {
	case slog.KindString:
		return paint(h.color.text, v.String())

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return h.color.number.Render(v.String())

	case slog.KindBool:
		if v.Bool() {
			return h.color.yes.Render("true")
		}

		return h.color.no.Render("false")

	case slog.KindDuration:
		return h.color.duration.Render(v.Duration().String())

	case slog.KindTime:
		return h.color.when.Render(v.Time().Format(time.RFC3339))

	default:
		switch x := v.Any().(type) {
		case nil:
			return h.color.key.Render("null")
		case error:
			return paint(h.color.no, x.Error())
		default:
			return paint(h.color.text, v.String())
		}
	}
}

// flatten appends a to fields with its key qualified by prefix. Log
// valuers are resolved and groups are expanded into dotted keys.
func flatten(fields []slog.Attr, prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		if a.Equal(slog.Attr{}) {
			return fields
		}

		return append(fields, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}

	group := a.Value.Group()
	if len(group) == 0 {
		return fields
	}

	if a.Key != "" {
		prefix += a.Key + "."
	}

	for _, g := range group {
		fields = flatten(fields, prefix, g)
	}

	return fields
}
