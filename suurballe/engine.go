package suurballe

import (
	"github.com/katalvlaran/suurballe/core"
	"github.com/katalvlaran/suurballe/heap"
)

// residualSearch runs one best-first search over the residual graph
// induced by a.flow, under reduced costs derived from a.potential. It
// mirrors the reference ResidualDijkstra step: a forward residual arc
// exists wherever flow[e] == 0 (reduced cost length[e] - π(target) +
// π(source)), and a reverse residual arc exists wherever flow[e] == 1
// (reduced cost -length[e] - π(source) + π(target), walked tail-ward).
//
// On success it rewrites a.potential so that every residual length
// stays non-negative for the next iteration (the dual update), stores
// the shortest-path predecessor tree in st.pred, and returns true. It
// returns false if t is unreachable from a.source in the current
// residual graph.
func (a *Algorithm) residualSearch() bool {
	n := len(a.nodeIndex)
	h := heap.NewBinaryHeap(n)
	st := newSearchState(n)

	sIdx := a.nodeIndex[a.source]
	h.Push(sIdx, 0)
	st.pred[a.source] = core.NoArc

	for !h.Empty() && a.indexNode[h.Top()] != a.target {
		uIdx := h.Top()
		d := h.PrioTop()
		h.Pop()

		u := a.indexNode[uIdx]
		st.dist[u] = d
		st.processed = append(st.processed, u)

		base := d + a.potential[u]

		for _, e := range a.g.OutArcs(u) {
			if a.flow[e] != 0 {
				continue
			}
			v := a.g.Target(e)
			k := base + a.length[e] - a.potential[v]
			a.relax(h, st, v, e, k)
		}
		for _, e := range a.g.InArcs(u) {
			if a.flow[e] != 1 {
				continue
			}
			w := a.g.Source(e)
			k := base - a.length[e] - a.potential[w]
			a.relax(h, st, w, e, k)
		}
	}

	if h.Empty() {
		return false
	}

	tDist := h.PrioTop()
	for _, x := range st.processed {
		a.potential[x] += st.dist[x] - tDist
	}

	a.pred = st.pred
	return true
}

// relax offers a candidate distance k to v along arc e, pushing v if
// it has never been inserted this search or decreasing its key if k
// improves on its current distance. Items already popped (PostHeap)
// are never revisited: their shortest distance is final.
func (a *Algorithm) relax(h heap.Heap, st *searchState, v core.Node, e core.Arc, k int64) {
	idx := a.nodeIndex[v]
	switch h.State(idx) {
	case heap.PreHeap:
		h.Push(idx, k)
		st.pred[v] = e
	case heap.InHeap:
		if k < h.Prio(idx) {
			h.Decrease(idx, k)
			st.pred[v] = e
		}
	case heap.PostHeap:
	}
}
