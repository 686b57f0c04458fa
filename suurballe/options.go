package suurballe

import "go.uber.org/zap"

// Options configures an Algorithm instance. Use New's variadic Option
// arguments to override the defaults returned by DefaultOptions.
type Options struct {
	// Verbose enables a debug-level log line per augmentation.
	Verbose bool

	// Logger receives the algorithm's trace output when Verbose is
	// set. Defaults to zap.NewNop() so callers that never opt in to
	// verbose tracing pay no logging cost.
	Logger *zap.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: Verbose disabled
// and a no-op logger. Picking how many paths to look for when a
// caller has no graph-specific value in mind (the CLI's --k default)
// is config.Config.DefaultK's job, not Algorithm's: k <= 0 always
// means "find nothing" per the algorithm's boundary behavior.
func DefaultOptions() Options {
	return Options{
		Verbose: false,
		Logger:  zap.NewNop(),
	}
}

// WithLogger installs a structured logger for verbose tracing. Pass a
// *zap.Logger obtained from the logging package or your own
// zap.Config.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithVerbose enables a debug-level log line for every augmenting
// path found by FindFlow.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}
