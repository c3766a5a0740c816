package wavl

// rangeKind classifies the result of resolving a [start, end) or [start,
// end] interval against the tree's current contents.
type rangeKind int8

const (
	// rangeDefault is a normal, non-empty interval with well-defined lower
	// and upper member nodes.
	rangeDefault rangeKind = iota
	// rangeExclusive is an interval that collapses to nothing because its
	// bounds land between (or exactly on) two adjacent keys with an
	// exclusive upper bound.
	rangeExclusive
	// rangeBefore is an interval that lies entirely below every key
	// currently in the tree (or the tree is empty). searchRange also
	// returns it when the resolved lower bound sorts after the resolved
	// upper bound, i.e. the interval falls between two adjacent keys.
	rangeBefore
	// rangeAfter is an interval that lies entirely above every key
	// currently in the tree.
	rangeAfter
	// rangeRemoved marks a Range object that has already been
	// destructively consumed by Delete or Drain. searchRange itself never
	// returns this kind; Range sets it after a successful consumption.
	rangeRemoved
)

// searchRange resolves the half-open interval [start, end) — or the closed
// interval [start, end] when exclusive is false — against the tree. A nil
// start means "from the smallest key"; a nil end means "to the largest
// key". It returns ErrInvalidRange without consulting the tree if both
// bounds are given and start sorts after end.
func (t *Tree[K, V]) searchRange(start, end *K, exclusive bool) (lower, upper *node[K, V], kind rangeKind, err error) {
	if start != nil && end != nil && t.cmp(*start, *end) > 0 {
		return t.sentinel, t.sentinel, rangeBefore, ErrInvalidRange
	}
	if t.isNil(t.root) {
		return t.sentinel, t.sentinel, rangeBefore, nil
	}

	var lowerPred *node[K, V]
	haveLowerPred := false

	if start == nil {
		lower = t.minOf(t.root)
	} else {
		hit, parent, branch := t.searchSlot(*start)
		switch {
		case !t.isNil(hit):
			lower = hit
			if exclusive {
				lowerPred = t.predecessor(hit)
				haveLowerPred = true
			}
		case branch == left:
			lower = parent
		default:
			lower = t.successor(parent)
			if t.isNil(lower) {
				return t.sentinel, t.sentinel, rangeAfter, nil
			}
		}
	}

	if end == nil {
		upper = t.maxOf(t.root)
	} else {
		hit, parent, branch := t.searchSlot(*end)
		switch {
		case !t.isNil(hit) && exclusive:
			if lower == hit {
				return hit, hit, rangeExclusive, nil
			}
			upper = t.predecessor(hit)
		case !t.isNil(hit):
			upper = hit
		case branch == right:
			upper = parent
		default:
			upper = t.predecessor(parent)
			if t.isNil(upper) {
				return t.sentinel, t.sentinel, rangeBefore, nil
			}
		}

		if haveLowerPred && lowerPred == upper {
			a, b := lowerPred, lower
			if !t.isNil(a) && t.cmp(a.key, b.key) > 0 {
				a, b = b, a
			}
			return a, b, rangeExclusive, nil
		}
	}

	if t.cmp(lower.key, upper.key) > 0 {
		return t.sentinel, t.sentinel, rangeBefore, nil
	}

	return lower, upper, rangeDefault, nil
}
