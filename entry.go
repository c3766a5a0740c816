package wavl

// Entry is a Cursor that always carries the key it was looked up with, even
// while Vacant, plus convenience methods for the common
// get-or-insert/get-or-compute patterns. It is returned only by Map.Entry.
type Entry[K any, V any] struct {
	Cursor[K, V]
}

// OrInsert returns the entry's value if it is Occupied, otherwise inserts
// value under the entry's key and returns it.
func (e *Entry[K, V]) OrInsert(value V) V {
	if v, ok := e.Value(); ok {
		return v
	}
	_, _, _ = e.Cursor.Insert(value)
	v, _ := e.Value()
	return v
}

// OrInsertFunc is like OrInsert but only computes value by calling fn when
// the entry is Vacant, avoiding the cost of building a default value on the
// common hit path.
func (e *Entry[K, V]) OrInsertFunc(fn func() V) V {
	if v, ok := e.Value(); ok {
		return v
	}
	_, _, _ = e.Cursor.Insert(fn())
	v, _ := e.Value()
	return v
}

// Set overwrites the entry's value if Occupied, or inserts it if Vacant,
// always leaving the entry Occupied afterwards.
func (e *Entry[K, V]) Set(value V) {
	_, _, _ = e.Cursor.Insert(value)
}
