package wavl

// Rank itself is never stored; only its parity is, per the invariant that
// the only rank facts a WAVL implementation ever needs are whether a given
// rank difference is 1 or 2. The sentinel is given parityOne at
// construction so that it behaves as rank -1 in every parity comparison
// below, and every freshly-created leaf is given parityZero so that it
// behaves as rank 0, satisfying the leaf-rank invariant without tracking a
// real integer anywhere.

// promote raises n's rank by one step. At the parity level this is the same
// bit flip as demote; the two names exist to document intent at the call
// site in insert.go/delete.go.
func promote[K any, V any](n *node[K, V]) {
	n.parity = n.parity.flip()
}

// demote lowers n's rank by one step.
func demote[K any, V any](n *node[K, V]) {
	n.parity = n.parity.flip()
}

// rankDiff reports the rank difference between parent and child: 1 if their
// parities differ, 2 if they match. This holds for a real child or for the
// sentinel, since the sentinel's fixed parityOne makes it behave as rank -1.
func rankDiff[K any, V any](parent, child *node[K, V]) int {
	if parent.parity != child.parity {
		return 1
	}
	return 2
}

// is2child reports whether child is a 2-child of parent (rank difference of
// 2 — the "weak" case that can require rebalancing after a demote/delete
// elsewhere in the subtree).
func is2child[K any, V any](parent, child *node[K, V]) bool {
	return rankDiff(parent, child) == 2
}

// is1child reports whether child is a 1-child of parent (rank difference of
// 1).
func is1child[K any, V any](parent, child *node[K, V]) bool {
	return rankDiff(parent, child) == 1
}

// isLeaf reports whether n has no real children.
func (t *Tree[K, V]) isLeaf(n *node[K, V]) bool {
	return t.isNil(n.left) && t.isNil(n.right)
}

// isUnary reports whether n has exactly one real child.
func (t *Tree[K, V]) isUnary(n *node[K, V]) bool {
	return t.isNil(n.left) != t.isNil(n.right)
}

// newLeaf constructs a detached node at rank 0, ready to be spliced into the
// tree by insert.
func newLeaf[K any, V any](key K, value V, sentinel *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		parent: sentinel,
		left:   sentinel,
		right:  sentinel,
		parity: parityZero,
	}
}
