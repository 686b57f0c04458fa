package suurballe

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/suurballe/core"
)

// Algorithm finds k arc-disjoint directed paths of minimum total
// length from a source to a target node, using the successive
// shortest path method specialized to unit-capacity flow. Build one
// with New, then call Run, or the Init/FindFlow/FindPaths steps
// individually when you need the intermediate flow or potentials.
//
// An Algorithm is not safe for concurrent use: each run mutates its
// own flow and potential maps in place.
type Algorithm struct {
	g      core.Digraph
	length core.LengthMap
	opts   Options

	flow      core.FlowMap
	potential core.PotentialMap

	// nodeIndex/indexNode map core.Node to/from the dense heap index
	// residualSearch needs. Rebuilt by Init from g.Nodes() on every
	// run, not cached from New, so they stay correct even if the
	// caller added nodes to g between New and Init.
	nodeIndex map[core.Node]int
	indexNode []core.Node

	source core.Node
	target core.Node
	pred   map[core.Node]core.Arc

	initialized   bool
	flowComputed  bool
	pathsComputed bool

	pathNum int
	paths   []Path
}

// New builds an Algorithm over g with the given arc lengths. Lengths
// must be non-negative; this is checked in Init, not here, since g
// and length are allowed to be mutated by the caller between New and
// Init (mirroring the reference implementation's deferred validation).
// Init re-derives the node index from g each time it runs, so nodes
// added to g after New also see this deferred-validation treatment.
func New(g core.Digraph, length core.LengthMap, opts ...Option) *Algorithm {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Algorithm{
		g:      g,
		length: length,
		opts:   o,
		source: core.NoNode,
		target: core.NoNode,
	}
}

// FlowMap installs an externally owned flow map so callers can
// inspect or reuse it across runs. Init resets every arc's entry to 0
// regardless of who allocated the map. Returns a for chaining. Query
// the current flow map with FlowMapValue.
func (a *Algorithm) FlowMap(m core.FlowMap) *Algorithm {
	a.flow = m
	return a
}

// PotentialMap installs an externally owned potential map. Init
// resets every node's entry to 0 regardless of who allocated the map.
// Returns a for chaining. Query the current potential map with
// PotentialMapValue.
func (a *Algorithm) PotentialMap(m core.PotentialMap) *Algorithm {
	a.potential = m
	return a
}

// Init seeds the algorithm for a run from s: the node index used by
// residualSearch's heap is (re)built from g.Nodes(), so arcs or nodes
// added to g since New or since the previous Init are picked up; the
// flow map is allocated (if not externally supplied) and every arc's
// flow is set to 0; the potential map is allocated (if not externally
// supplied) and every node's potential is set to 0. Panics with
// ErrNegativeLength if the bound length map has a negative entry, and
// with ErrUnknownNode if s is not a node of the bound digraph.
func (a *Algorithm) Init(s core.Node) {
	if !a.g.HasNode(s) {
		panic(ErrUnknownNode)
	}
	if err := core.ValidateLengths(a.g, a.length); err != nil {
		panic(ErrNegativeLength)
	}

	a.source = s

	nodes := a.g.Nodes()
	a.nodeIndex = make(map[core.Node]int, len(nodes))
	a.indexNode = make([]core.Node, len(nodes))
	for i, n := range nodes {
		a.nodeIndex[n] = i
		a.indexNode[i] = n
	}

	if a.flow == nil {
		a.flow = make(core.FlowMap, len(a.g.Arcs()))
	}
	for _, e := range a.g.Arcs() {
		a.flow[e] = 0
	}

	if a.potential == nil {
		a.potential = make(core.PotentialMap, len(a.nodeIndex))
	}
	for _, n := range a.g.Nodes() {
		a.potential[n] = 0
	}

	a.initialized = true
	a.flowComputed = false
	a.pathsComputed = false
	a.pathNum = 0
	a.paths = nil
}

// FindFlow runs up to k successive residual searches from the source
// bound by Init to t, augmenting one unit of flow along each shortest
// path found. It returns the number of arc-disjoint paths actually
// found, which is k unless the residual graph runs out of s→t paths
// first.
//
// k == 0 and s == t are boundary cases handled without invoking the
// search engine at all: both yield a path count of 0. Panics with
// ErrNotInitialized if Init has not been called, and with
// ErrUnknownNode if t is not a node of the bound digraph.
func (a *Algorithm) FindFlow(t core.Node, k int) int {
	if !a.initialized {
		panic(ErrNotInitialized)
	}
	if !a.g.HasNode(t) {
		panic(ErrUnknownNode)
	}

	a.target = t
	a.pathNum = 0
	a.flowComputed = true

	if k <= 0 || a.source == a.target {
		return a.pathNum
	}

	for a.pathNum < k {
		if !a.residualSearch() {
			break
		}
		a.pathNum++

		if a.opts.Verbose {
			a.opts.Logger.Debug("suurballe: augmented a path", zap.Int("path_num", a.pathNum))
		}

		u := a.target
		for {
			e, ok := a.pred[u]
			if !ok || e == core.NoArc {
				break
			}
			if a.g.Target(e) == u {
				a.flow[e] = 1
				u = a.g.Source(e)
			} else {
				a.flow[e] = 0
				u = a.g.Target(e)
			}
		}
	}

	return a.pathNum
}

// FindPaths decomposes the flow produced by FindFlow into PathNum()
// arc-disjoint simple paths from source to target. Panics with
// ErrFlowNotComputed if FindFlow has not been called.
func (a *Algorithm) FindPaths() {
	if !a.flowComputed {
		panic(ErrFlowNotComputed)
	}

	residual := make(core.FlowMap, len(a.flow))
	for e, f := range a.flow {
		residual[e] = f
	}

	paths := make([]Path, a.pathNum)
	for i := 0; i < a.pathNum; i++ {
		var arcs []core.Arc
		n := a.source
		for n != a.target {
			var chosen core.Arc = core.NoArc
			for _, e := range a.g.OutArcs(n) {
				if residual[e] == 1 {
					chosen = e
					break
				}
			}
			arcs = append(arcs, chosen)
			residual[chosen] = 0
			n = a.g.Target(chosen)
		}
		paths[i] = Path{Arcs: arcs}
	}

	a.paths = paths
	a.pathsComputed = true
}

// Run is Init, FindFlow, and FindPaths combined, for callers who only
// need the final result. It returns the number of paths found.
func (a *Algorithm) Run(s, t core.Node, k int) int {
	a.Init(s)
	n := a.FindFlow(t, k)
	a.FindPaths()
	return n
}

// TotalLength returns the combined length of every arc currently
// carrying flow, i.e. the sum of the lengths of all found paths.
func (a *Algorithm) TotalLength() int64 {
	var total int64
	for _, e := range a.g.Arcs() {
		if a.flow[e] == 1 {
			total += a.length[e]
		}
	}
	return total
}

// Flow returns the current flow value (0 or 1) of arc e.
func (a *Algorithm) Flow(e core.Arc) int8 {
	return a.flow[e]
}

// FlowMapValue returns the algorithm's current flow map. Treat the
// returned map as read-only; mutating it has undefined effect on
// later calls.
func (a *Algorithm) FlowMapValue() core.FlowMap {
	return a.flow
}

// Potential returns the dual variable associated with node n.
func (a *Algorithm) Potential(n core.Node) int64 {
	return a.potential[n]
}

// PotentialMapValue returns the algorithm's current potential map.
// Treat the returned map as read-only.
func (a *Algorithm) PotentialMapValue() core.PotentialMap {
	return a.potential
}

// PathNum returns the number of arc-disjoint paths found by the most
// recent FindFlow call.
func (a *Algorithm) PathNum() int {
	return a.pathNum
}

// Path returns the i-th path produced by FindPaths. Paths are numbered
// in decomposition order: each one follows, from every node, the first
// outgoing arc (in g.OutArcs order) still carrying unused flow. This
// order is not sorted by length and need not match the order in which
// FindFlow found its augmenting paths. Returns ErrFlowNotComputed if
// FindPaths has not run, and ErrPathIndexOutOfRange if i is outside
// [0, PathNum()).
func (a *Algorithm) Path(i int) (Path, error) {
	if !a.pathsComputed {
		return Path{}, ErrFlowNotComputed
	}
	if i < 0 || i >= len(a.paths) {
		return Path{}, ErrPathIndexOutOfRange
	}
	return a.paths[i], nil
}
