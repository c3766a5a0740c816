package wavl

// Pair is a single key/value pair, used where entries are materialised into
// a slice (Range.Drain).
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Map is an ordered key-value map backed by a WAVL tree. The zero value is
// not usable; construct one with New.
type Map[K any, V any] struct {
	tree *Tree[K, V]
}

// New constructs an empty Map ordered by cmp. See Ascending/Descending for
// ready-made comparators over cmp.Ordered key types.
func New[K any, V any](cmp Comparator[K]) *Map[K, V] {
	return &Map[K, V]{tree: newTree[K, V](cmp)}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.size
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.size == 0
}

// Get returns the value stored under key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := m.tree.search(key)
	if m.tree.isNil(n) {
		var zero V
		return zero, false
	}
	return n.value, true
}

// ContainsKey reports whether key is present in the map.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return !m.tree.isNil(m.tree.search(key))
}

// Insert stores value under key, overwriting any existing value, and
// returns the value it replaced. When existed is false, old is the zero
// value.
func (m *Map[K, V]) Insert(key K, value V) (old V, existed bool) {
	_, old, existed = m.tree.insert(key, value)
	return old, existed
}

// Set stores value under key, overwriting any existing value, and returns
// the map itself so calls can be chained.
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	m.tree.insert(key, value)
	return m
}

// Compare returns the comparator the map was constructed with.
func (m *Map[K, V]) Compare() Comparator[K] {
	return m.tree.cmp
}

// Delete removes key from the map, returning its value and whether it was
// present.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	return m.tree.remove(key)
}

// Clear empties the map.
func (m *Map[K, V]) Clear() {
	m.tree = newTree[K, V](m.tree.cmp)
}

// First returns a cursor to the map's smallest key.
func (m *Map[K, V]) First() (Cursor[K, V], bool) {
	n := m.tree.minOf(m.tree.root)
	if m.tree.isNil(n) {
		return Cursor[K, V]{}, false
	}
	return occupiedCursor(m.tree, n), true
}

// Last returns a cursor to the map's largest key.
func (m *Map[K, V]) Last() (Cursor[K, V], bool) {
	n := m.tree.maxOf(m.tree.root)
	if m.tree.isNil(n) {
		return Cursor[K, V]{}, false
	}
	return occupiedCursor(m.tree, n), true
}

// Cursor returns a cursor positioned at key, Occupied if it exists or
// Vacant (at the position it would be inserted) if it doesn't.
func (m *Map[K, V]) Cursor(key K) Cursor[K, V] {
	hit, parent, branch := m.tree.searchSlot(key)
	if !m.tree.isNil(hit) {
		return occupiedCursor(m.tree, hit)
	}
	return vacantCursor(m.tree, parent, branch, key)
}

// Entry returns an Entry for key, for get-or-insert style access without a
// second search.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	return Entry[K, V]{Cursor: m.Cursor(key)}
}

// Range returns a view over the half-open interval [start, end), or the
// closed interval [start, end] when exclusive is false. A nil start means
// "from the smallest key"; a nil end means "to the largest key". It
// returns ErrInvalidRange if both bounds are given and start sorts after
// end.
func (m *Map[K, V]) Range(start, end *K, exclusive bool) (Range[K, V], error) {
	lower, upper, kind, err := m.tree.searchRange(start, end, exclusive)
	if err != nil {
		return Range[K, V]{}, err
	}
	return Range[K, V]{tree: m.tree, kind: kind, first: lower, last: upper}, nil
}

// String renders a box-drawing dump of the underlying tree, for debugging.
func (m *Map[K, V]) String() string {
	return m.tree.String()
}
