package profile

// Profiler selects a profiling mode and the directory its output is written
// to.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option modifies a Profiler.
type Option func(Profiler) Profiler

// New returns a Profiler with opts applied.
func New(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// WithMode sets the profiling mode, one of [Modes].
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.Path = path

		return p
	}
}

// WithQuiet suppresses the profiler's own log messages.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Start begins profiling. An empty or unknown mode, or a build without the
// pprof tag, returns a Stopper that does nothing.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
