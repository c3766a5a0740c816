package wavl

import "cmp"

// Ascending returns a Comparator that orders an ordered type K from
// smallest to largest, using the standard library's three-way comparison.
func Ascending[K cmp.Ordered]() Comparator[K] {
	return func(a, b K) int {
		return cmp.Compare(a, b)
	}
}

// Descending returns a Comparator that orders an ordered type K from
// largest to smallest.
func Descending[K cmp.Ordered]() Comparator[K] {
	return func(a, b K) int {
		return cmp.Compare(b, a)
	}
}
