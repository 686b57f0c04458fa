package core

// compile-time assertion that *DiGraph satisfies Digraph.
var _ Digraph = (*DiGraph)(nil)

// AddNode registers n as a node of the graph. Adding the same node
// twice has no additional effect. Complexity: O(1) amortized.
func (g *DiGraph) AddNode(n Node) {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, ok := g.nodeSet[n]; ok {
		return
	}
	g.nodeSet[n] = struct{}{}
	g.nodes = append(g.nodes, n)
}

// AddArc adds a new arc from→to and returns its Arc identity. Both
// endpoints are registered as nodes if not already present. Parallel
// arcs between the same endpoints are permitted; each call returns a
// distinct Arc. Complexity: O(1) amortized.
func (g *DiGraph) AddArc(from, to Node) Arc {
	g.AddNode(from)
	g.AddNode(to)

	g.muArc.Lock()
	defer g.muArc.Unlock()

	a := g.nextArc
	g.nextArc++

	g.arcs = append(g.arcs, a)
	g.arcEnds[a] = arcEnds{from: from, to: to}
	g.outArcs[from] = append(g.outArcs[from], a)
	g.inArcs[to] = append(g.inArcs[to], a)

	return a
}

// Source returns the tail node of arc a, or NoNode if a is unknown.
func (g *DiGraph) Source(a Arc) Node {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	ends, ok := g.arcEnds[a]
	if !ok {
		return NoNode
	}
	return ends.from
}

// Target returns the head node of arc a, or NoNode if a is unknown.
func (g *DiGraph) Target(a Arc) Node {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	ends, ok := g.arcEnds[a]
	if !ok {
		return NoNode
	}
	return ends.to
}

// Nodes returns every node of the graph in insertion order.
func (g *DiGraph) Nodes() []Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Arcs returns every arc of the graph in insertion order.
func (g *DiGraph) Arcs() []Arc {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	out := make([]Arc, len(g.arcs))
	copy(out, g.arcs)
	return out
}

// OutArcs returns the arcs leaving n in insertion order. Unknown
// nodes report no outgoing arcs.
func (g *DiGraph) OutArcs(n Node) []Arc {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	src := g.outArcs[n]
	out := make([]Arc, len(src))
	copy(out, src)
	return out
}

// InArcs returns the arcs entering n in insertion order. Unknown
// nodes report no incoming arcs.
func (g *DiGraph) InArcs(n Node) []Arc {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	src := g.inArcs[n]
	out := make([]Arc, len(src))
	copy(out, src)
	return out
}

// HasNode reports whether n was registered via AddNode (directly or
// as an arc endpoint).
func (g *DiGraph) HasNode(n Node) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	_, ok := g.nodeSet[n]
	return ok
}

// NodeCount returns the number of nodes currently in the graph.
func (g *DiGraph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// ArcCount returns the number of arcs currently in the graph.
func (g *DiGraph) ArcCount() int {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	return len(g.arcs)
}
