package wavl

// insertAtSlot splices a new rank-0 leaf for key/value at the given
// parent/branch position without searching, and returns the new node.
// parent may be the sentinel, meaning the tree is currently empty and the
// new node becomes the root. This is the primitive the cursor API uses to
// avoid a second search once a slot is already known.
func (t *Tree[K, V]) insertAtSlot(parent *node[K, V], branch side, key K, value V) *node[K, V] {
	leaf := newLeaf[K, V](key, value, t.sentinel)
	leaf.parent = parent
	t.size++

	if t.isNil(parent) {
		t.root = leaf
		return leaf
	}

	wasLeaf := t.isLeaf(parent)
	t.setChildOn(parent, branch, leaf)
	if wasLeaf {
		t.insertFixup(parent)
	}
	return leaf
}

// insert places key/value into the tree. If key is already present, its
// value is overwritten in place (no structural or rank change) and the
// prior value is returned with existed=true. Otherwise a new leaf is
// spliced in via insertAtSlot and old is the zero value with existed=false.
func (t *Tree[K, V]) insert(key K, value V) (n *node[K, V], old V, existed bool) {
	hit, parent, branch := t.searchSlot(key)
	if !t.isNil(hit) {
		old = hit.value
		hit.value = value
		return hit, old, true
	}
	n = t.insertAtSlot(parent, branch, key, value)
	var zero V
	return n, zero, false
}

// insertFixup restores the rank invariant after a leaf was attached under x,
// which was a leaf itself and so now carries a rank-0 child at rank
// difference 0 — a transient violation this loop clears by promoting up the
// tree and performing at most one rotation.
func (t *Tree[K, V]) insertFixup(x *node[K, V]) {
	promote(x)
	for {
		p := x.parent
		if t.isNil(p) {
			return
		}
		if is1child(p, x) {
			return
		}

		xIsLeft := p.left == x
		var w *node[K, V]
		if xIsLeft {
			w = p.right
		} else {
			w = p.left
		}

		if is1child(p, w) {
			promote(p)
			x = p
			continue
		}

		if xIsLeft {
			b := x.right
			if is2child(x, b) {
				t.rotateRight(p)
				demote(p)
			} else {
				t.rotateLeftRight(p)
				promote(b)
				demote(p)
				demote(x)
			}
		} else {
			b := x.left
			if is2child(x, b) {
				t.rotateLeft(p)
				demote(p)
			} else {
				t.rotateRightLeft(p)
				promote(b)
				demote(p)
				demote(x)
			}
		}
		return
	}
}
