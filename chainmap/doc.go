// Package chainmap provides Map, a generic hash table that resolves
// collisions by separate chaining and grows by doubling.
//
// Overview:
//
//   - Every key lives in exactly one chain, the one at bucket hash(key) % Capacity().
//   - After an insertion leaves Len()/Capacity() above 0.8 the table is
//     rebuilt at twice the capacity by re-inserting every live pair into a
//     fresh bucket slice. Old buckets are never mutated in place.
//   - Remove never shrinks the table.
//
// Hashing:
//
//   - By default keys are hashed with hash/maphash.Comparable using a seed
//     drawn once per Map, so any comparable key type works out of the box.
//   - WithHasher installs a custom hash function; it must agree with ==
//     (equal keys produce equal hashes).
//
// Complexity:
//
//   - Get / ContainsKey / Remove: O(1) average, O(n) worst case (every key in one chain).
//   - Put: O(1) amortized; a growth pass is O(n + capacity).
//
// Errors:
//
//   - ErrBadCapacity: WithCapacity received a value < 1 (raised via panic
//     from the option constructor).
//
// Thread safety:
//
//   - Map is not safe for concurrent use. It is designed as internal
//     bookkeeping for single-writer structures such as indexheap.Heap.
package chainmap
