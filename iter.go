package wavl

import "iter"

// ForEach calls fn for every key/value pair in ascending order, stopping
// early if fn returns false.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	for cur := m.tree.minOf(m.tree.root); !m.tree.isNil(cur); cur = m.tree.successor(cur) {
		if !fn(cur.key, cur.value) {
			return
		}
	}
}

// ForEachReverse is ForEach in descending order.
func (m *Map[K, V]) ForEachReverse(fn func(key K, value V) bool) {
	for cur := m.tree.maxOf(m.tree.root); !m.tree.isNil(cur); cur = m.tree.predecessor(cur) {
		if !fn(cur.key, cur.value) {
			return
		}
	}
}

// Keys returns an iterator over the map's keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.ForEach(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// KeysReverse returns an iterator over the map's keys in descending order.
func (m *Map[K, V]) KeysReverse() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.ForEachReverse(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Values returns an iterator over the map's values, in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.ForEach(func(_ K, value V) bool {
			return yield(value)
		})
	}
}

// ValuesReverse returns an iterator over the map's values, in descending
// key order.
func (m *Map[K, V]) ValuesReverse() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.ForEachReverse(func(_ K, value V) bool {
			return yield(value)
		})
	}
}

// Entries returns an iterator over the map's key/value pairs in ascending
// order.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.ForEach(yield)
	}
}

// EntriesReverse returns an iterator over the map's key/value pairs in
// descending order.
func (m *Map[K, V]) EntriesReverse() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.ForEachReverse(yield)
	}
}
