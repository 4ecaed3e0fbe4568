package log

import (
	"io"
	"sync"
)

// Option modifies a Logger configuration.
type Option func(config) config

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// set returns an Option that runs fn with the configuration locked.
func set(fn func(*config)) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		fn(&c)

		return c
	}
}

// WithDefaults resets every setting to its default and writes to w.
func WithDefaults(w io.Writer) Option {
	return set(func(c *config) {
		c.output = discardNil(w)
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.level = DefaultLevel
		c.format = DefaultFormat
		c.caller = DefaultCaller
		c.pretty = DefaultPretty
	})
}

// WithOutput sets the writer of log messages. A nil writer discards them.
func WithOutput(w io.Writer) Option {
	return set(func(c *config) { c.output = discardNil(w) })
}

// WithLevel sets the minimum level of logged messages.
func WithLevel(level Level) Option {
	return set(func(c *config) { c.level = level })
}

// WithFormat sets the message format.
func WithFormat(format Format) Option {
	return set(func(c *config) { c.format = format })
}

// WithTimeLayout sets the timestamp layout. Named layouts of the [time]
// package such as "RFC3339" or "Kitchen" are recognized; anything else is a
// [time.Time.Format] layout. An empty layout or "none" omits timestamps.
func WithTimeLayout(layout string) Option {
	format := makeFormatTimeFunc(layout)

	return set(func(c *config) { c.formatTime = format })
}

// WithCaller sets whether messages include their call site.
func WithCaller(enable bool) Option {
	return set(func(c *config) { c.caller = enable })
}

// WithPretty sets whether messages are colorized and laid out for reading.
// Colors are only used when the output is a terminal.
func WithPretty(enable bool) Option {
	return set(func(c *config) { c.pretty = enable })
}

func discardNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}
