package keyed

// entry is a key/value pair occupying one slot of the heap.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Queue implements a priority queue whose elements are addressable by key,
// allowing values to be updated or removed after insertion. Entries are
// stored by value in a single slice; a map from key to slot index keeps
// lookups O(1).
type Queue[K comparable, V any] struct {
	entries []entry[K, V]
	index   map[K]int
	higher  func(a, b V) bool // returns true if a has higher priority than b
}

// New creates a keyed priority queue ordered by higher, which reports
// whether a outranks b.
func New[K comparable, V any](higher func(a, b V) bool) *Queue[K, V] {
	return &Queue[K, V]{
		index:  make(map[K]int),
		higher: higher,
	}
}

// Len returns the number of entries in the queue.
func (q *Queue[K, V]) Len() int {
	return len(q.entries)
}

// Get returns the value stored under key, if present.
func (q *Queue[K, V]) Get(key K) (V, bool) {
	i, ok := q.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return q.entries[i].value, true
}

// Set inserts a new key or updates an existing key's value, restoring the
// heap order around the affected slot.
func (q *Queue[K, V]) Set(key K, value V) {
	if i, ok := q.index[key]; ok {
		old := q.entries[i].value
		q.entries[i].value = value
		if q.higher(value, old) {
			q.up(i)
		} else {
			q.down(i)
		}
		return
	}

	q.entries = append(q.entries, entry[K, V]{key: key, value: value})
	q.index[key] = len(q.entries) - 1
	q.up(len(q.entries) - 1)
}

// Remove removes the given key from the queue. It returns true if the key
// was present.
func (q *Queue[K, V]) Remove(key K) bool {
	i, ok := q.index[key]
	if !ok {
		return false
	}

	last := len(q.entries) - 1
	if i != last {
		q.swap(i, last)
	}
	delete(q.index, key)
	q.entries = q.entries[:last]

	if i != last {
		q.down(i)
		q.up(i)
	}
	return true
}

// Pop removes and returns the highest priority entry.
func (q *Queue[K, V]) Pop() (key K, value V, ok bool) {
	if len(q.entries) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	e := q.entries[0]
	q.Remove(e.key)
	return e.key, e.value, true
}

// Peek returns the highest priority entry without removing it.
func (q *Queue[K, V]) Peek() (key K, value V, ok bool) {
	if len(q.entries) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	e := q.entries[0]
	return e.key, e.value, true
}

// swap exchanges entries i and j and fixes up the index map.
func (q *Queue[K, V]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.index[q.entries[i].key] = i
	q.index[q.entries[j].key] = j
}

// less compares entries at index i and j.
func (q *Queue[K, V]) less(i, j int) bool {
	return q.higher(q.entries[i].value, q.entries[j].value)
}

// up moves the entry at index i up to its proper position.
func (q *Queue[K, V]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the entry at index i down to its proper position.
func (q *Queue[K, V]) down(i int) {
	for {
		highest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(q.entries) && q.less(left, highest) {
			highest = left
		}
		if right < len(q.entries) && q.less(right, highest) {
			highest = right
		}

		if highest == i {
			break
		}

		q.swap(i, highest)
		i = highest
	}
}
