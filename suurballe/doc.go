// Package suurballe implements Suurballe's algorithm for finding k
// arc-disjoint directed paths of minimum total length from a source
// node to a target node in a digraph with non-negative integer arc
// lengths.
//
// The problem is a specialization of the successive-shortest-path
// (SSP) method for minimum-cost flow, restricted to unit arc
// capacities and a single commodity: each augmentation is one
// shortest path in the residual graph under reduced costs, found with
// an ordinary non-negative-weight best-first search because node
// potentials keep every residual arc length non-negative across
// iterations.
//
// Overview:
//
//   - Algorithm.Init seeds the flow and potential maps.
//   - Algorithm.FindFlow runs up to k residual searches, each one
//     augmenting the unit flow along the shortest s→t path found and
//     cancelling any arc used in the reverse direction.
//   - Algorithm.FindPaths decomposes the resulting 0/1 flow into the
//     path_num arc-disjoint simple paths that realize it.
//   - Algorithm.Run is Init + FindFlow + FindPaths in one call.
//
// Complexity: O(k · (|V| + |A|) log |V|) with the binary-heap
// residual search in the heap package.
//
// Error handling: FindFlow without Init, FindPaths without FindFlow,
// and out-of-range Path(i) are precondition violations (see errors.go);
// an unreachable target or k <= 0 are not errors — they simply yield
// fewer paths than asked for (PathNum() == 0 when k <= 0).
package suurballe
