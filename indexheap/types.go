package indexheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Heap methods.
var (
	// ErrEmptyHeap indicates Peek or Poll on a heap with no entries.
	ErrEmptyHeap = errors.New("indexheap: heap is empty")

	// ErrDuplicateValue indicates Add of a value that is already in the heap.
	// Use ChangePriority to move an existing value.
	ErrDuplicateValue = errors.New("indexheap: value already in heap")

	// ErrNotFound indicates ChangePriority of a value that is not in the heap.
	ErrNotFound = errors.New("indexheap: value not in heap")

	// ErrBadCapacity indicates a negative WithCapacity argument.
	ErrBadCapacity = errors.New("indexheap: capacity must be non-negative")
)

// Entry pairs a value with its priority.
type Entry[V comparable, P constraints.Ordered] struct {
	Value    V
	Priority P
}

// Options configures a Heap before creation.
type Options struct {
	// Capacity pre-sizes the entry slice. Zero leaves sizing to append.
	Capacity int
}

// Option is a functional option for New.
type Option func(*Options)

// WithCapacity pre-sizes the heap for n entries.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}
