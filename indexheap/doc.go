// Package indexheap provides Heap, a binary min-heap of distinct values
// whose priorities can be changed after insertion.
//
// Overview:
//
//   - Entries (value, priority) live in a dense, zero-indexed slice that
//     encodes a complete binary tree: children of i are 2i+1 and 2i+2,
//     the parent of i is (i-1)/2.
//   - A chainmap.Map records the current slice index of every value. It is
//     updated in the same swap step that moves entries, so Contains and
//     ChangePriority never scan the slice.
//
// Invariants (hold between any two public calls):
//
//  1. Heap order: priority(parent(i)) <= priority(i) for every i > 0.
//  2. No value is present twice (duplicate priorities are fine).
//  3. index[entries[i].Value] == i for every i, and the index holds no other keys.
//
// Ordering details:
//
//   - Add bubbles the new entry up only past parents with strictly greater priority.
//   - Poll bubbles the moved root down into the smaller child; when both
//     children have equal priority the right child is taken. A node whose
//     priority equals its smaller child's stays where it is.
//   - ChangePriority bubbles up when the new priority is strictly smaller
//     than the old one and down otherwise. Setting the same priority is
//     accepted and moves nothing.
//
// Complexity:
//
//   - Add, Poll, ChangePriority: O(log n) expected.
//   - Peek, Len: O(1). Contains, Priority: O(1) average.
//
// Errors (sentinel):
//
//   - ErrEmptyHeap      Peek/Poll on an empty heap.
//   - ErrDuplicateValue Add of a value already present; the heap is unchanged.
//   - ErrNotFound       ChangePriority of an absent value.
//
// Thread safety:
//
//   - Heap is not safe for concurrent use; give each computation its own Heap.
package indexheap
