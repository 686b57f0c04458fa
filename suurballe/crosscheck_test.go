// Package suurballe_test also cross-checks Algorithm.PathNum against
// an independently implemented reference solver: on a unit-capacity
// digraph, maximum flow equals the maximum number of arc-disjoint
// source→target paths, so flow.EdmondsKarp (which shares no code with
// residualSearch) must agree with PathNum for every graph below.
package suurballe_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/suurballe/core"
	"github.com/katalvlaran/suurballe/flow"
	"github.com/katalvlaran/suurballe/suurballe"
)

// assertPathNumMatchesMaxFlow runs alg and an independent max-flow
// solver over the same digraph and fails unless they agree.
func assertPathNumMatchesMaxFlow(t *testing.T, g core.Digraph, length core.LengthMap, s, tt core.Node, k int) {
	t.Helper()

	alg := suurballe.New(g, length)
	pathNum := alg.Run(s, tt, k)

	maxFlow, _, err := flow.EdmondsKarp(context.Background(), g, flow.UnitCapacity(g), s, tt)
	if err != nil {
		t.Fatalf("EdmondsKarp: %v", err)
	}

	want := maxFlow
	if int64(k) < want {
		want = int64(k)
	}
	if int64(pathNum) != want {
		t.Fatalf("PathNum() = %d; want min(k, EdmondsKarp max flow) = min(%d, %d) = %d", pathNum, k, maxFlow, want)
	}
}

func TestCrossCheck_TwoParallelArcs(t *testing.T) {
	g := core.NewDiGraph(2)
	s, tt := core.Node(0), core.Node(1)
	short := g.AddArc(s, tt)
	long := g.AddArc(s, tt)
	length := core.LengthMap{short: 3, long: 5}

	assertPathNumMatchesMaxFlow(t, g, length, s, tt, 2)
}

func TestCrossCheck_Diamond(t *testing.T) {
	g := core.NewDiGraph(4)
	s, a, b, tt := core.Node(0), core.Node(1), core.Node(2), core.Node(3)
	sa := g.AddArc(s, a)
	at := g.AddArc(a, tt)
	sb := g.AddArc(s, b)
	bt := g.AddArc(b, tt)
	length := core.LengthMap{sa: 1, at: 1, sb: 2, bt: 2}

	assertPathNumMatchesMaxFlow(t, g, length, s, tt, 2)
}

func TestCrossCheck_ForcedReverse(t *testing.T) {
	g := core.NewDiGraph(4)
	s, n1, n2, tt := core.Node(0), core.Node(1), core.Node(2), core.Node(3)
	s1 := g.AddArc(s, n1)
	s2 := g.AddArc(s, n2)
	n12 := g.AddArc(n1, n2)
	n1t := g.AddArc(n1, tt)
	n2t := g.AddArc(n2, tt)
	length := core.LengthMap{s1: 1, s2: 4, n12: 1, n1t: 4, n2t: 1}

	assertPathNumMatchesMaxFlow(t, g, length, s, tt, 2)
}

// TestCrossCheck_InsufficientPaths: the diamond only ever offers 2
// arc-disjoint s→t paths; asking PathNum for k=3 must still agree with
// EdmondsKarp's max flow of 2, not with k itself.
func TestCrossCheck_InsufficientPaths(t *testing.T) {
	g := core.NewDiGraph(4)
	s, a, b, tt := core.Node(0), core.Node(1), core.Node(2), core.Node(3)
	sa := g.AddArc(s, a)
	at := g.AddArc(a, tt)
	sb := g.AddArc(s, b)
	bt := g.AddArc(b, tt)
	length := core.LengthMap{sa: 1, at: 1, sb: 2, bt: 2}

	assertPathNumMatchesMaxFlow(t, g, length, s, tt, 3)
}
