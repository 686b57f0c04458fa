package suurballe

import "github.com/katalvlaran/suurballe/core"

// Path is one arc-disjoint s→t path found by FindPaths, given as an
// ordered arc sequence from source to target. Arcs may be residual
// (reversed relative to the digraph) only transiently during a
// search; a decomposed Path always lists forward arcs of the original
// digraph.
type Path struct {
	Arcs []core.Arc
}

// Length sums the length of every arc on the path under the given
// length map.
func (p Path) Length(length core.LengthMap) int64 {
	var total int64
	for _, a := range p.Arcs {
		total += length[a]
	}
	return total
}

// searchState is the scratch space for one residual search. It is
// allocated fresh per call to residualSearch so that successive
// searches never see stale distances or predecessors from an earlier
// augmentation.
type searchState struct {
	dist      map[core.Node]int64
	pred      map[core.Node]core.Arc
	processed []core.Node
}

func newSearchState(n int) *searchState {
	return &searchState{
		dist:      make(map[core.Node]int64, n),
		pred:      make(map[core.Node]core.Arc, n),
		processed: make([]core.Node, 0, n),
	}
}
