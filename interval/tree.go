package interval

// This file implements the augmented balanced BST at the heart of the
// package: an AVL tree keyed by (start, end) pairs in which every node
// caches the maximum end coordinate found in its subtree.  The cached max
// lets an overlap search prune any subtree that ends before the query
// begins, so queries touch O(log n + k) nodes instead of the whole tree.
//
// Coordinates are closed on both ends: the stored range [start, end]
// overlaps a query [qs, qe] iff start <= qe && end >= qs.  The tree itself
// does not validate ranges; callers must not insert start > end.

// TreeNode is a single (start, end) -> value entry in an IntervalTree.
type TreeNode[V any] struct {
	start, end int
	value      V

	// max is the largest end coordinate among this node and all nodes below
	// it.  It must be restored bottom-up after every structural change.
	max         int
	height      int
	left, right *TreeNode[V]
}

// Start returns the 1-based (or caller-convention) start of the entry.
func (n *TreeNode[V]) Start() int { return n.start }

// End returns the inclusive end of the entry.
func (n *TreeNode[V]) End() int { return n.end }

// Value returns the value stored at this entry.
func (n *TreeNode[V]) Value() V { return n.value }

// IntervalTree is a self-balancing interval tree.  The zero value is an
// empty tree ready for use.  A tree may be freely read from multiple
// goroutines once all mutations have completed; Put and Remove require
// exclusive access.
type IntervalTree[V any] struct {
	root *TreeNode[V]
	size int
}

// Len returns the number of entries in the tree.
func (t *IntervalTree[V]) Len() int { return t.size }

// Put inserts value at the exact key (start, end).  If the key is already
// present the stored value is replaced and the prior value is returned with
// replaced == true.
func (t *IntervalTree[V]) Put(start, end int, value V) (prev V, replaced bool) {
	t.root, prev, replaced = put(t.root, start, end, value)
	if !replaced {
		t.size++
	}
	return prev, replaced
}

// Get returns the value stored at the exact key (start, end), if any.
func (t *IntervalTree[V]) Get(start, end int) (V, bool) {
	n := t.root
	for n != nil {
		c := cmpKey(start, end, n.start, n.end)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Remove deletes the exact key (start, end), returning the removed value if
// the key was present.
func (t *IntervalTree[V]) Remove(start, end int) (V, bool) {
	var (
		v  V
		ok bool
	)
	t.root, v, ok = remove(t.root, start, end)
	if ok {
		t.size--
	}
	return v, ok
}

// Visit calls fn on every entry whose range overlaps [start, end], in
// ascending (start, end) order.  fn returning false stops the walk.
func (t *IntervalTree[V]) Visit(start, end int, fn func(n *TreeNode[V]) bool) {
	visit(t.root, start, end, fn)
}

// Overlappers returns all entries overlapping [start, end] in ascending
// (start, end) order.
func (t *IntervalTree[V]) Overlappers(start, end int) []*TreeNode[V] {
	var nodes []*TreeNode[V]
	visit(t.root, start, end, func(n *TreeNode[V]) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// cmpKey orders keys by start, then end.
func cmpKey(s1, e1, s2, e2 int) int {
	if s1 != s2 {
		return s1 - s2
	}
	return e1 - e2
}

func height[V any](n *TreeNode[V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// update restores n's height and subtree max from its children.
func (n *TreeNode[V]) update() {
	n.height = 1 + max(height(n.left), height(n.right))
	n.max = n.end
	if n.left != nil && n.left.max > n.max {
		n.max = n.left.max
	}
	if n.right != nil && n.right.max > n.max {
		n.max = n.right.max
	}
}

// rotateLeft moves n below its right child, returning the new subtree root.
func rotateLeft[V any](n *TreeNode[V]) *TreeNode[V] {
	r := n.right
	n.right = r.left
	r.left = n
	n.update()
	r.update()
	return r
}

// rotateRight moves n below its left child, returning the new subtree root.
func rotateRight[V any](n *TreeNode[V]) *TreeNode[V] {
	l := n.left
	n.left = l.right
	l.right = n
	n.update()
	l.update()
	return l
}

// rebalance restores the AVL invariant at n after a child subtree changed,
// returning the (possibly new) subtree root.  Heights and maxes along the
// rotation path are recomputed by update.
func rebalance[V any](n *TreeNode[V]) *TreeNode[V] {
	n.update()
	switch d := height(n.left) - height(n.right); {
	case d > 1:
		if height(n.left.left) < height(n.left.right) {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case d < -1:
		if height(n.right.right) < height(n.right.left) {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

func put[V any](n *TreeNode[V], start, end int, value V) (root *TreeNode[V], prev V, replaced bool) {
	if n == nil {
		var zero V
		return &TreeNode[V]{start: start, end: end, value: value, max: end, height: 1}, zero, false
	}
	switch c := cmpKey(start, end, n.start, n.end); {
	case c < 0:
		n.left, prev, replaced = put(n.left, start, end, value)
	case c > 0:
		n.right, prev, replaced = put(n.right, start, end, value)
	default:
		prev, n.value = n.value, value
		return n, prev, true
	}
	return rebalance(n), prev, replaced
}

func remove[V any](n *TreeNode[V], start, end int) (root *TreeNode[V], v V, ok bool) {
	if n == nil {
		var zero V
		return nil, zero, false
	}
	switch c := cmpKey(start, end, n.start, n.end); {
	case c < 0:
		n.left, v, ok = remove(n.left, start, end)
	case c > 0:
		n.right, v, ok = remove(n.right, start, end)
	default:
		v, ok = n.value, true
		if n.left == nil {
			return n.right, v, ok
		}
		if n.right == nil {
			return n.left, v, ok
		}
		// Two children: replace n's entry with its in-order successor, then
		// remove the successor from the right subtree.
		s := n.right
		for s.left != nil {
			s = s.left
		}
		n.start, n.end, n.value = s.start, s.end, s.value
		n.right, _, _ = remove(n.right, s.start, s.end)
	}
	if !ok {
		return n, v, false
	}
	return rebalance(n), v, ok
}

func visit[V any](n *TreeNode[V], start, end int, fn func(n *TreeNode[V]) bool) bool {
	if n == nil || n.max < start {
		// Nothing in this subtree reaches the query.
		return true
	}
	if !visit(n.left, start, end, fn) {
		return false
	}
	if n.start > end {
		// Keys are ordered by start, so n and its right subtree begin past
		// the query end.
		return true
	}
	if n.end >= start {
		if !fn(n) {
			return false
		}
	}
	return visit(n.right, start, end, fn)
}
