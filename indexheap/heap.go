package indexheap

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/shortpath/chainmap"
)

// Heap is a min-heap of distinct values ordered by priority, with an
// index map that makes Contains and ChangePriority sub-linear.
// The zero value is not usable; construct with New.
type Heap[V comparable, P constraints.Ordered] struct {
	entries []Entry[V, P]         // complete binary tree, root at 0
	index   *chainmap.Map[V, int] // value → position in entries
}

// New creates an empty Heap.
func New[V comparable, P constraints.Ordered](opts ...Option) *Heap[V, P] {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	var mapOpts []chainmap.Option[V]
	if cfg.Capacity > 0 {
		// Enough buckets that n entries stay under the growth threshold.
		buckets := int(float64(cfg.Capacity)/chainmap.MaxLoadFactor) + 1
		mapOpts = append(mapOpts, chainmap.WithCapacity[V](buckets))
	}

	return &Heap[V, P]{
		entries: make([]Entry[V, P], 0, cfg.Capacity),
		index:   chainmap.New[V, int](mapOpts...),
	}
}

// Len returns the number of entries. O(1).
func (h *Heap[V, P]) Len() int { return len(h.entries) }

// Contains reports whether v is in the heap. O(1) average.
func (h *Heap[V, P]) Contains(v V) bool { return h.index.ContainsKey(v) }

// Priority returns the current priority of v and whether v is present.
func (h *Heap[V, P]) Priority(v V) (P, bool) {
	i, ok := h.index.Get(v)
	if !ok {
		var zero P
		return zero, false
	}

	return h.entries[i].Priority, true
}

// Add inserts v with priority p.
//
// Returns ErrDuplicateValue (wrapped with v) if v is already present; in
// that case the heap is left untouched.
//
// Complexity: O(log n) expected.
func (h *Heap[V, P]) Add(v V, p P) error {
	if h.index.ContainsKey(v) {
		return fmt.Errorf("%w: %v", ErrDuplicateValue, v)
	}

	h.entries = append(h.entries, Entry[V, P]{Value: v, Priority: p})
	last := len(h.entries) - 1
	h.index.Put(v, last)
	h.bubbleUp(last)

	return nil
}

// Peek returns the value with the smallest priority without removing it.
// Returns ErrEmptyHeap if the heap is empty. O(1).
func (h *Heap[V, P]) Peek() (V, error) {
	e, err := h.PeekEntry()
	return e.Value, err
}

// PeekEntry returns the root entry (value and priority) without removing it.
// Returns ErrEmptyHeap if the heap is empty. O(1).
func (h *Heap[V, P]) PeekEntry() (Entry[V, P], error) {
	if len(h.entries) == 0 {
		return Entry[V, P]{}, ErrEmptyHeap
	}

	return h.entries[0], nil
}

// Poll removes and returns the value with the smallest priority.
// Returns ErrEmptyHeap if the heap is empty.
//
// Complexity: O(log n) expected.
func (h *Heap[V, P]) Poll() (V, error) {
	n := len(h.entries)
	if n == 0 {
		var zero V
		return zero, ErrEmptyHeap
	}

	root := h.entries[0].Value
	h.index.Remove(root)

	// Single entry: nothing to move.
	if n == 1 {
		h.entries = h.entries[:0]
		return root, nil
	}

	// Move the last entry into the root slot, then sink it.
	h.entries[0] = h.entries[n-1]
	h.entries[n-1] = Entry[V, P]{}
	h.entries = h.entries[:n-1]
	h.index.Put(h.entries[0].Value, 0)
	h.bubbleDown(0)

	return root, nil
}

// ChangePriority sets the priority of v to p and restores heap order.
// Only one direction can be violated by a single change: a smaller
// priority bubbles up, anything else bubbles down.
//
// Returns ErrNotFound (wrapped with v) if v is not in the heap.
//
// Complexity: O(log n) expected.
func (h *Heap[V, P]) ChangePriority(v V, p P) error {
	i, ok := h.index.Get(v)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}

	old := h.entries[i].Priority
	h.entries[i].Priority = p
	if p < old {
		h.bubbleUp(i)
	} else {
		h.bubbleDown(i)
	}

	return nil
}

// swap exchanges entries i and j and both of their index entries.
// Every movement inside the heap goes through here.
func (h *Heap[V, P]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index.Put(h.entries[i].Value, i)
	h.index.Put(h.entries[j].Value, j)
}

// bubbleUp moves entry k toward the root while its parent has a strictly
// greater priority.
func (h *Heap[V, P]) bubbleUp(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if h.entries[parent].Priority <= h.entries[k].Priority {
			return
		}
		h.swap(parent, k)
		k = parent
	}
}

// bubbleDown moves entry k toward the leaves while it is strictly greater
// than its smaller child.
func (h *Heap[V, P]) bubbleDown(k int) {
	for {
		child := h.smallerChild(k)
		if child < 0 || h.entries[k].Priority <= h.entries[child].Priority {
			return
		}
		h.swap(k, child)
		k = child
	}
}

// smallerChild returns the index of k's child with the smaller priority,
// the right child on a tie, or -1 if k is a leaf.
func (h *Heap[V, P]) smallerChild(k int) int {
	n := len(h.entries)
	left, right := 2*k+1, 2*k+2
	switch {
	case left >= n:
		return -1
	case right >= n:
		return left
	case h.entries[left].Priority < h.entries[right].Priority:
		return left
	default:
		return right
	}
}
