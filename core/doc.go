// Package core defines the digraph primitives shared by the suurballe
// engine and the flow package: Node and Arc identity types, the
// Digraph contract, and a concrete thread-safe adjacency-list
// implementation.
//
// A Digraph never reports negative capacities or weights itself; it
// is purely a topology plus arc identity. Arc lengths live in a
// separate LengthMap owned by the caller, exactly as a real-world
// digraph library keeps weights out of the core graph structure.
//
// Concurrency: DiGraph guards its vertex and arc storage with
// separate sync.RWMutex locks (muNode for nodes, muArc for arcs and
// adjacency), following the same split-lock discipline as the
// teacher's graph implementation. Algorithms that iterate via the
// Digraph interface while the graph is not being mutated pay only the
// read-lock cost.
package core
