// Package flow implements Edmonds–Karp maximum flow on a core.Digraph
// with integer arc capacities. Its primary role in this module is as
// an independent cross-check for the suurballe package: the maximum
// s→t flow in a digraph where every arc has capacity 1 equals the
// maximum number of arc-disjoint s→t paths, so after a run with a
// given k, suurballe.Algorithm.PathNum() equals the smaller of k and
// EdmondsKarp(ctx, g, UnitCapacity(g), s, t).
//
// Method: breadth-first search for shortest (fewest-arc) augmenting
// paths in the residual graph, repeated until none remain.
// Time: O(V · A²) in the worst case with integer capacities.
package flow
