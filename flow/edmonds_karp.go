package flow

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/suurballe/core"
)

// EdmondsKarp computes the maximum s→t flow in g under the given integer
// arc capacities, via repeated breadth-first augmenting-path search
// (Edmonds–Karp). It returns the flow value and the settled per-arc
// flow. ctx is checked before each augmenting-path search so a caller
// can bound a cross-check against a pathological digraph.
func EdmondsKarp(ctx context.Context, g core.Digraph, capacity Capacity, source, sink core.Node, opts ...Option) (int64, FlowValue, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.HasNode(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return 0, nil, ErrSinkNotFound
	}
	for _, a := range g.Arcs() {
		if capacity[a] < 0 {
			return 0, nil, ErrNegativeCapacity
		}
	}

	val := make(FlowValue, len(g.Arcs()))
	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return total, val, err
		}

		path, bottleneck := bfsAugmentingPath(g, capacity, val, source, sink)
		if path == nil {
			break
		}
		total += bottleneck

		if o.Verbose {
			o.Logger.Debug("flow: augmented", zap.Int64("bottleneck", bottleneck), zap.Int("hops", len(path)))
		}

		for _, s := range path {
			if s.forward {
				val[s.arc] += bottleneck
			} else {
				val[s.arc] -= bottleneck
			}
		}
	}

	return total, val, nil
}

// step is one hop of an augmenting path: arc traversed in its
// original direction (forward, consuming spare capacity) or against
// it (a residual reverse hop, canceling existing flow).
type step struct {
	arc     core.Arc
	forward bool
}

// bfsAugmentingPath finds the shortest (fewest-hop) residual path
// from source to sink and its bottleneck capacity, or returns a nil
// path if sink is unreachable in the current residual graph.
func bfsAugmentingPath(g core.Digraph, capacity Capacity, val FlowValue, source, sink core.Node) ([]step, int64) {
	parent := make(map[core.Node]step)
	visited := map[core.Node]bool{source: true}
	queue := []core.Node{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, a := range g.OutArcs(u) {
			if capacity[a]-val[a] <= 0 {
				continue
			}
			v := g.Target(a)
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = step{arc: a, forward: true}
			if v == sink {
				return reconstruct(g, capacity, val, parent, source, sink)
			}
			queue = append(queue, v)
		}

		for _, a := range g.InArcs(u) {
			if val[a] <= 0 {
				continue
			}
			v := g.Source(a)
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = step{arc: a, forward: false}
			if v == sink {
				return reconstruct(g, capacity, val, parent, source, sink)
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// reconstruct walks parent back from sink to source, returning the
// path in source→sink order together with its bottleneck capacity.
func reconstruct(g core.Digraph, capacity Capacity, val FlowValue, parent map[core.Node]step, source, sink core.Node) ([]step, int64) {
	var rev []step
	bottleneck := int64(1<<62 - 1)

	n := sink
	for n != source {
		s := parent[n]
		rev = append(rev, s)
		if s.forward {
			if r := capacity[s.arc] - val[s.arc]; r < bottleneck {
				bottleneck = r
			}
			n = g.Source(s.arc)
		} else {
			if r := val[s.arc]; r < bottleneck {
				bottleneck = r
			}
			n = g.Target(s.arc)
		}
	}

	path := make([]step, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path, bottleneck
}
