package dispatch

// node is one interval-tree node. maxEnd is the maximum End value across the
// subtree rooted here; it is maintained on every insertion and never needs to
// shrink because deletion is not supported (assignments are never retracted).
type node struct {
	alert       *Alert
	maxEnd      int
	left, right *node
}

// IntervalTree is an augmented binary search tree over the alerts committed
// to one team. It is keyed on Alert.Start with ties going right, so equal
// starts keep insertion order in an in-order walk.
//
// The zero value is an empty tree ready for use.
type IntervalTree struct {
	root *node
	size int
}

// Insert adds a to the tree. It never fails for a well-formed Alert.
func (t *IntervalTree) Insert(a *Alert) {
	t.root = insert(t.root, a)
	t.size++
}

func insert(n *node, a *Alert) *node {
	if n == nil {
		return &node{alert: a, maxEnd: a.end}
	}
	if a.start < n.alert.start {
		n.left = insert(n.left, a)
	} else {
		n.right = insert(n.right, a)
	}
	if a.end > n.maxEnd {
		n.maxEnd = a.end
	}
	return n
}

// Overlaps reports whether any committed interval conflicts with a. It is an
// existence-only search: at each node it reports a conflict immediately,
// otherwise it descends left when the left subtree's maxEnd exceeds a.Start
// — under the augmentation invariant that is the only place an overlap could
// hide — and right otherwise. An empty tree never overlaps anything.
func (t *IntervalTree) Overlaps(a *Alert) bool {
	return overlaps(t.root, a)
}

func overlaps(n *node, a *Alert) bool {
	if n == nil {
		return false
	}
	if conflict(n.alert, a) {
		return true
	}
	if n.left != nil && n.left.maxEnd > a.start {
		return overlaps(n.left, a)
	}
	return overlaps(n.right, a)
}

// Len returns the number of alerts in the tree.
func (t *IntervalTree) Len() int { return t.size }
