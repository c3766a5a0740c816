package wavl

// The four rotation primitives are purely structural: they rearrange
// parent/child/sibling links and return the node that now occupies the
// subtree's old root position, but never touch rank parity. Callers (in
// insert.go/delete.go) are responsible for all promote/demote bookkeeping
// around a rotation, exactly as spec'd: keeping rotation itself
// rank-agnostic makes the two fixup loops the only place rank arithmetic
// happens.

// rotateLeft performs a left rotation around x: x's right child y becomes
// the new subtree root, x becomes y's left child, and y's old left child
// becomes x's new right child. Returns y.
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	if !t.isNil(y.left) {
		y.left.parent = x
	}
	y.parent = x.parent
	t.replaceChild(x.parent, x, y)
	y.left = x
	x.parent = y
	return y
}

// rotateRight performs a right rotation around x: x's left child y becomes
// the new subtree root, x becomes y's right child, and y's old right child
// becomes x's new left child. Returns y.
func (t *Tree[K, V]) rotateRight(x *node[K, V]) *node[K, V] {
	y := x.left
	x.left = y.right
	if !t.isNil(y.right) {
		y.right.parent = x
	}
	y.parent = x.parent
	t.replaceChild(x.parent, x, y)
	y.right = x
	x.parent = y
	return y
}

// rotateRightLeft performs a double rotation: first a right rotation around
// x's right child, then a left rotation around x. Returns the node that
// ends up at the top of the subtree (x's former right-grandchild via the
// left branch).
func (t *Tree[K, V]) rotateRightLeft(x *node[K, V]) *node[K, V] {
	t.rotateRight(x.right)
	return t.rotateLeft(x)
}

// rotateLeftRight performs a double rotation: first a left rotation around
// x's left child, then a right rotation around x. Returns the node that
// ends up at the top of the subtree.
func (t *Tree[K, V]) rotateLeftRight(x *node[K, V]) *node[K, V] {
	t.rotateLeft(x.left)
	return t.rotateRight(x)
}

// rotateOn rotates x towards the given side: left rotates x.right up,
// right rotates x.left up. A convenience used by the fixup loops, which
// already compute the side symbolically.
func (t *Tree[K, V]) rotateOn(x *node[K, V], s side) *node[K, V] {
	if s == left {
		return t.rotateLeft(x)
	}
	return t.rotateRight(x)
}
