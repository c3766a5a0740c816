package wavl

// remove deletes key from the tree if present, returning the removed value
// and true, or the zero value and false if key was absent.
func (t *Tree[K, V]) remove(key K) (value V, existed bool) {
	n := t.search(key)
	if t.isNil(n) {
		var zero V
		return zero, false
	}
	value = n.value

	if !t.isNil(n.left) && !t.isNil(n.right) {
		t.removeTwoChildren(n)
	} else {
		t.removeAtMostOneChild(n)
	}
	return value, true
}

// removeAtMostOneChild splices out n, which has zero or one real child, and
// rebalances starting from n's former parent.
func (t *Tree[K, V]) removeAtMostOneChild(n *node[K, V]) {
	n.removed = true
	child := n.left
	if t.isNil(child) {
		child = n.right
	}

	p := n.parent
	var branch side
	hasParent := !t.isNil(p)
	if hasParent {
		branch = t.branchOf(n)
	}

	t.replaceChild(p, n, child)
	if !t.isNil(child) {
		child.parent = p
	}

	t.size--

	if hasParent {
		t.removeFixup(p, branch)
	}
}

// removeTwoChildren deletes n, which has two real children, by detaching
// its in-order predecessor m from m's own position (an ordinary
// zero-or-one-child removal, handled identically to removeAtMostOneChild)
// and then relinking m into n's structural slot, inheriting n's rank and
// children outright. The predecessor (not the successor) is chosen so that
// any cursor resting on n's successor is left completely untouched.
func (t *Tree[K, V]) removeTwoChildren(n *node[K, V]) {
	n.removed = true
	m := t.predecessor(n) // maxOf(n.left); has no right child
	mc := m.left
	mp := m.parent
	branch := t.branchOf(m)

	t.replaceChild(mp, m, mc)
	if !t.isNil(mc) {
		mc.parent = mp
	}

	m.parent = n.parent
	t.replaceChild(n.parent, n, m)
	m.left = n.left
	if !t.isNil(n.left) {
		n.left.parent = m
	}
	m.right = n.right
	if !t.isNil(n.right) {
		n.right.parent = m
	}
	m.parity = n.parity

	t.size--

	fixupParent := mp
	if mp == n {
		// m was n's direct left child: n no longer occupies a tree slot,
		// m has taken its place and inherits the same child layout.
		fixupParent = m
	}
	t.removeFixup(fixupParent, branch)
}

// isOverDemoted reports whether c — whose subtree rank has just decreased
// by one step relative to p — now sits at a rank difference of 3 from p, a
// real invariant violation. The difference before the decrease was known to
// be 1 or 2, so parity alone disambiguates the new value: odd (parities
// differ) means 3, even (parities match) means 2.
func isOverDemoted[K any, V any](p, c *node[K, V]) bool {
	return p.parity != c.parity
}

// removeFixup restores the rank invariant after the subtree occupying p's
// child slot on side s lost one rank step. It walks up the tree performing
// demotes, with at most one rotation (single or double) before it
// terminates.
func (t *Tree[K, V]) removeFixup(p *node[K, V], s side) {
	for {
		if t.isNil(p) {
			return
		}
		c := t.childOn(p, s)

		switch {
		case t.isLeaf(p) && is2child(p, c):
			// p has rank 1 with no real children: a leaf must be rank 0.
			demote(p)

		case isOverDemoted(p, c):
			sib := t.childOn(p, s.other())
			if is2child(p, sib) {
				demote(p)
				break
			}
			near := t.childOn(sib, s)
			far := t.childOn(sib, s.other())
			if is1child(sib, far) {
				t.rotateOn(p, s)
				promote(sib)
				demote(p)
				if t.isLeaf(p) {
					demote(p)
				}
				return
			}
			if is2child(sib, near) {
				// sib is a 2,2-node: demote it and p, then keep walking up.
				demote(sib)
				demote(p)
				break
			}
			// The near nephew rises two ranks and p falls two; both changes
			// cancel under parity tracking, leaving only sib's demotion.
			t.doubleRotateOn(p, s)
			demote(sib)
			return

		default:
			return
		}

		if t.isNil(p.parent) {
			return
		}
		s = t.branchOf(p)
		p = p.parent
	}
}

// doubleRotateOn performs the double rotation that lifts p's near nephew
// (on side s) to the top of the subtree.
func (t *Tree[K, V]) doubleRotateOn(p *node[K, V], s side) *node[K, V] {
	if s == left {
		return t.rotateRightLeft(p)
	}
	return t.rotateLeftRight(p)
}
