// Package heap provides the tri-state priority queue the suurballe
// engine runs its residual shortest-path search on: a node is either
// pre-heap (never inserted this search), in-heap (currently present),
// or post-heap (popped, and never re-inserted this search).
//
// Heap is a contract, not just a type, so an algorithm written
// against it can be handed any conforming priority queue; BinaryHeap
// is the only implementation provided here, a classic 4-ary-free
// binary min-heap with an explicit index map supporting decrease-key
// in O(log n).
package heap
