package chainmap

// Map is a hash table from K to V with per-bucket linked chains.
// The zero value is not usable; construct with New.
type Map[K comparable, V any] struct {
	buckets []*pair[K, V]
	count   int
	hash    Hasher[K]
}

// New creates an empty Map. Options are applied left to right.
//
// Complexity: O(capacity).
func New[K comparable, V any](opts ...Option[K]) *Map[K, V] {
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Hasher == nil {
		cfg.Hasher = seededHasher[K]()
	}

	return &Map[K, V]{
		buckets: make([]*pair[K, V], cfg.Capacity),
		hash:    cfg.Hasher,
	}
}

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int { return m.count }

// Capacity returns the current number of buckets.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// LoadFactor returns Len()/Capacity().
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.count) / float64(len(m.buckets))
}

// bucket returns the chain index for key k under the current capacity.
func (m *Map[K, V]) bucket(k K) int {
	return int(m.hash(k) % uint64(len(m.buckets)))
}

// Get returns the value stored for k and whether it was present.
//
// Complexity: O(1) average, O(n) worst case.
func (m *Map[K, V]) Get(k K) (V, bool) {
	for p := m.buckets[m.bucket(k)]; p != nil; p = p.next {
		if p.key == k {
			return p.value, true
		}
	}
	var zero V

	return zero, false
}

// ContainsKey reports whether k is stored.
func (m *Map[K, V]) ContainsKey(k K) bool {
	if m.count == 0 {
		return false
	}
	_, ok := m.Get(k)

	return ok
}

// Put stores v under k. If k was already present its value is replaced
// and the previous value is returned with existed == true.
//
// A new key that pushes the load factor above MaxLoadFactor triggers a
// rebuild at double capacity before Put returns.
//
// Complexity: O(1) amortized.
func (m *Map[K, V]) Put(k K, v V) (prev V, existed bool) {
	i := m.bucket(k)
	var last *pair[K, V]
	for p := m.buckets[i]; p != nil; p = p.next {
		if p.key == k {
			prev, p.value = p.value, v
			return prev, true
		}
		last = p
	}

	// New key: link at the chain tail.
	node := &pair[K, V]{key: k, value: v}
	if last == nil {
		m.buckets[i] = node
	} else {
		last.next = node
	}
	m.count++
	m.growIfNeeded()

	return prev, false
}

// Remove unlinks k from its chain and returns the value it held.
// The table never shrinks.
//
// Complexity: O(1) average, O(n) worst case.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	i := m.bucket(k)
	var before *pair[K, V]
	for p := m.buckets[i]; p != nil; p = p.next {
		if p.key != k {
			before = p
			continue
		}
		if before == nil {
			m.buckets[i] = p.next
		} else {
			before.next = p.next
		}
		m.count--

		return p.value, true
	}
	var zero V

	return zero, false
}

// Range calls fn for every pair until fn returns false.
// Iteration order is unspecified. fn must not mutate the Map.
func (m *Map[K, V]) Range(fn func(k K, v V) bool) {
	for _, head := range m.buckets {
		for p := head; p != nil; p = p.next {
			if !fn(p.key, p.value) {
				return
			}
		}
	}
}

// Keys returns a snapshot of all keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

// Clear drops every pair and keeps the current capacity.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	m.count = 0
}

// growIfNeeded doubles the table once the load factor exceeds MaxLoadFactor.
// The new bucket slice is filled from scratch: each live pair is re-linked
// at the head of its new chain, so no duplicate search is needed.
func (m *Map[K, V]) growIfNeeded() {
	if m.LoadFactor() <= MaxLoadFactor {
		return
	}

	old := m.buckets
	m.buckets = make([]*pair[K, V], 2*len(old))
	for _, head := range old {
		for p := head; p != nil; p = p.next {
			i := m.bucket(p.key)
			m.buckets[i] = &pair[K, V]{key: p.key, value: p.value, next: m.buckets[i]}
		}
	}
}
