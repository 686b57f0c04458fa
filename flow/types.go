package flow

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/suurballe/core"
)

// Sentinel errors for EdmondsKarp.
var (
	// ErrSourceNotFound indicates the source node is not in the digraph.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound indicates the sink node is not in the digraph.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrNegativeCapacity indicates the capacity map has a negative entry.
	ErrNegativeCapacity = errors.New("flow: negative arc capacity")
)

// Capacity is a read-only mapping from Arc to a non-negative integer
// capacity. UnitCapacity builds the capacity map EdmondsKarp needs to
// cross-check suurballe's arc-disjoint path count.
type Capacity map[core.Arc]int64

// FlowValue is the per-arc integer flow EdmondsKarp settles on.
type FlowValue map[core.Arc]int64

// UnitCapacity returns a Capacity map assigning every arc of g a
// capacity of 1, the network EdmondsKarp's max flow must match against
// suurballe's arc-disjoint path count.
func UnitCapacity(g core.Digraph) Capacity {
	capacity := make(Capacity, len(g.Arcs()))
	for _, a := range g.Arcs() {
		capacity[a] = 1
	}
	return capacity
}

// Options configures EdmondsKarp.
type Options struct {
	// Verbose enables a debug-level log line per augmenting path.
	Verbose bool

	// Logger receives the trace output when Verbose is set.
	Logger *zap.Logger
}

// DefaultOptions returns Verbose disabled with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Option is a functional option for EdmondsKarp.
type Option func(*Options)

// WithLogger installs a structured logger for verbose tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithVerbose enables a debug-level log line for every augmenting path.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}
