package wavl

import (
	"fmt"
	"strings"
)

// parity is the low bit of a node's rank. A WAVL rank rule only ever
// consults rank *differences*, so storing the full rank is unnecessary —
// parity equality between a node and its parent means a rank difference of
// 2, inequality means a difference of 1.
type parity bool

const (
	parityZero parity = false
	parityOne  parity = true
)

func (p parity) flip() parity {
	return !p
}

// node is a single element of the tree. Every field is only ever touched
// through Tree's methods; node itself carries no behaviour.
//
// parent/left/right never hold a Go nil — absence of a child or parent is
// represented by the tree's sentinel node, so rank arithmetic and rotation
// bookkeeping never need a nil-check special case.
type node[K any, V any] struct {
	key    K
	value  V
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	parity parity

	// removed is set the instant a node is detached from the tree, before
	// any of its links are unwound. Cursors hold a reference to a node and
	// check this flag to detect staleness.
	removed bool
}

// String renders "key: value (parity)" for use by Tree.String.
func (n *node[K, V]) String() string {
	b := new(strings.Builder)
	if s, ok := any(n.key).(fmt.Stringer); ok {
		b.WriteString(s.String())
	} else {
		fmt.Fprintf(b, "%v", n.key)
	}
	b.WriteString(": ")
	if s, ok := any(n.value).(fmt.Stringer); ok {
		b.WriteString(s.String())
	} else {
		fmt.Fprintf(b, "%v", n.value)
	}
	if n.parity == parityOne {
		b.WriteString(" (1)")
	} else {
		b.WriteString(" (0)")
	}
	return b.String()
}
