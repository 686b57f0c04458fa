package heap

// State reports where an item stands relative to one search: it has
// never been inserted (PreHeap), it is currently present (InHeap), or
// it was inserted and later popped (PostHeap). A PostHeap item is
// never re-inserted during the same search.
type State int

const (
	// PreHeap is the state of every item before its first Push.
	PreHeap State = iota - 1
	// InHeap is the state of an item currently present in the heap.
	InHeap
	// PostHeap is the state of an item after it has been popped.
	PostHeap
)

// Heap is the priority-queue contract the suurballe engine consumes:
// minimum priority at the top, decrease-key support, and tri-state
// membership reporting. Items are identified by small non-negative
// integers (node indices); Go's container/heap interface is not used
// directly because it cannot express decrease-key or item state.
type Heap interface {
	// Push inserts item with priority prio. item must be PreHeap.
	Push(item int, prio int64)
	// Top returns the item with minimum priority. The heap must be
	// non-empty.
	Top() int
	// PrioTop returns the minimum priority. The heap must be
	// non-empty.
	PrioTop() int64
	// Pop removes the item with minimum priority, marking it
	// PostHeap. The heap must be non-empty.
	Pop()
	// Decrease lowers item's priority to prio. item must be InHeap
	// with a priority at least prio.
	Decrease(item int, prio int64)
	// Prio returns the current priority of an in-heap item.
	Prio(item int) int64
	// State reports whether item is PreHeap, InHeap, or PostHeap.
	State(item int) State
	// Empty reports whether the heap holds no items.
	Empty() bool
}

// BinaryHeap is a minimum binary heap over integer items, keyed by an
// explicit index map so Decrease can run in O(log n). Construct one
// with NewBinaryHeap, sized for the number of items a single search
// will ever touch.
type BinaryHeap struct {
	prio  []int64 // prio[slot] = priority stored at heap slot
	items []int   // items[slot] = item stored at heap slot
	pos   []int   // pos[item] = slot holding item, or -1 if not InHeap
	state []State // state[item] = PreHeap / InHeap / PostHeap
}

// NewBinaryHeap constructs an empty BinaryHeap whose cross-reference
// map is sized for n items, all reporting PreHeap.
func NewBinaryHeap(n int) *BinaryHeap {
	pos := make([]int, n)
	state := make([]State, n)
	for i := range pos {
		pos[i] = -1
		state[i] = PreHeap
	}
	return &BinaryHeap{
		prio:  make([]int64, 0, n),
		items: make([]int, 0, n),
		pos:   pos,
		state: state,
	}
}

// Empty reports whether the heap holds no items.
func (h *BinaryHeap) Empty() bool { return len(h.items) == 0 }

// State reports whether item is PreHeap, InHeap, or PostHeap.
func (h *BinaryHeap) State(item int) State { return h.state[item] }

// Prio returns the current priority of an in-heap item.
func (h *BinaryHeap) Prio(item int) int64 { return h.prio[h.pos[item]] }

// Top returns the item with minimum priority.
func (h *BinaryHeap) Top() int {
	if h.Empty() {
		panic("heap: Top called on empty heap")
	}
	return h.items[0]
}

// PrioTop returns the minimum priority.
func (h *BinaryHeap) PrioTop() int64 {
	if h.Empty() {
		panic("heap: PrioTop called on empty heap")
	}
	return h.prio[0]
}

// Push inserts item with priority prio. item must be PreHeap.
func (h *BinaryHeap) Push(item int, prio int64) {
	slot := len(h.items)
	h.items = append(h.items, item)
	h.prio = append(h.prio, prio)
	h.pos[item] = slot
	h.state[item] = InHeap
	h.siftUp(slot)
}

// Decrease lowers item's priority to prio. item must be InHeap.
func (h *BinaryHeap) Decrease(item int, prio int64) {
	slot := h.pos[item]
	h.prio[slot] = prio
	h.siftUp(slot)
}

// Pop removes the item with minimum priority, marking it PostHeap.
func (h *BinaryHeap) Pop() {
	if h.Empty() {
		panic("heap: Pop called on empty heap")
	}
	top := h.items[0]
	h.state[top] = PostHeap
	h.pos[top] = -1

	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.prio[0] = h.prio[last]
	h.items = h.items[:last]
	h.prio = h.prio[:last]
	if last > 0 {
		h.pos[h.items[0]] = 0
		h.siftDown(0)
	}
}

func (h *BinaryHeap) siftUp(slot int) {
	for slot > 0 {
		parent := (slot - 1) / 2
		if h.prio[parent] <= h.prio[slot] {
			break
		}
		h.swap(parent, slot)
		slot = parent
	}
}

func (h *BinaryHeap) siftDown(slot int) {
	n := len(h.items)
	for {
		left := 2*slot + 1
		right := 2*slot + 2
		smallest := slot
		if left < n && h.prio[left] < h.prio[smallest] {
			smallest = left
		}
		if right < n && h.prio[right] < h.prio[smallest] {
			smallest = right
		}
		if smallest == slot {
			return
		}
		h.swap(slot, smallest)
		slot = smallest
	}
}

func (h *BinaryHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.prio[i], h.prio[j] = h.prio[j], h.prio[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

var _ Heap = (*BinaryHeap)(nil)
