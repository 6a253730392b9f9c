package dispatch

import "testing"

// iv builds a throwaway unit-weight alert covering [start, end).
func iv(t *testing.T, start, end int) *Alert {
	t.Helper()
	a, err := NewAlert("iv", start, end, 1, 1.0, "Branch0")
	if err != nil {
		t.Fatalf("NewAlert(%d, %d): %v", start, end, err)
	}
	return a
}

func TestConflict_Symmetry(t *testing.T) {
	tests := []struct {
		name string
		a    [2]int
		b    [2]int
		want bool
	}{
		{name: "overlapping", a: [2]int{1, 5}, b: [2]int{4, 8}, want: true},
		{name: "nested", a: [2]int{0, 10}, b: [2]int{3, 4}, want: true},
		{name: "identical", a: [2]int{2, 6}, b: [2]int{2, 6}, want: true},
		{name: "disjoint", a: [2]int{1, 3}, b: [2]int{7, 9}, want: false},
		{name: "touching boundary", a: [2]int{1, 5}, b: [2]int{5, 9}, want: false},
		{name: "zero duration inside", a: [2]int{5, 5}, b: [2]int{1, 9}, want: false},
		{name: "identical zero duration", a: [2]int{5, 5}, b: [2]int{5, 5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := iv(t, tt.a[0], tt.a[1]), iv(t, tt.b[0], tt.b[1])
			if got := conflict(a, b); got != tt.want {
				t.Errorf("conflict(a, b): got %v, want %v", got, tt.want)
			}
			if got := conflict(b, a); got != tt.want {
				t.Errorf("conflict(b, a): got %v, want %v (asymmetric)", got, tt.want)
			}
		})
	}
}

func TestOverlaps_EmptyTree(t *testing.T) {
	var tree IntervalTree
	if tree.Overlaps(iv(t, 0, 10)) {
		t.Error("Overlaps on empty tree: got true, want false")
	}
	if tree.Len() != 0 {
		t.Errorf("Len on empty tree: got %d, want 0", tree.Len())
	}
}

func TestOverlaps_SingleInterval(t *testing.T) {
	var tree IntervalTree
	tree.Insert(iv(t, 3, 7))

	tests := []struct {
		name string
		q    [2]int
		want bool
	}{
		{name: "overlapping", q: [2]int{5, 9}, want: true},
		{name: "contained", q: [2]int{4, 5}, want: true},
		{name: "before, touching", q: [2]int{0, 3}, want: false},
		{name: "after, touching", q: [2]int{7, 10}, want: false},
		{name: "disjoint", q: [2]int{10, 12}, want: false},
		{name: "zero duration at midpoint", q: [2]int{5, 5}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tree.Overlaps(iv(t, tt.q[0], tt.q[1])); got != tt.want {
				t.Errorf("Overlaps([%d, %d)): got %v, want %v", tt.q[0], tt.q[1], got, tt.want)
			}
		})
	}
}

// TestOverlaps_LeftSubtree pins the augmented search: a long interval hidden
// in the left subtree must be found via the left-maxEnd descent even when the
// root itself does not conflict.
func TestOverlaps_LeftSubtree(t *testing.T) {
	var tree IntervalTree
	tree.Insert(iv(t, 10, 12)) // root
	tree.Insert(iv(t, 2, 20))  // left child with a large maxEnd

	if !tree.Overlaps(iv(t, 14, 16)) {
		t.Error("Overlaps([14, 16)): got false, want true (left subtree holds [2, 20))")
	}
}

// TestOverlaps_RightDescent pins the opposite branch: when the left subtree's
// maxEnd does not exceed the candidate start, the search must still find an
// overlap on the right.
func TestOverlaps_RightDescent(t *testing.T) {
	var tree IntervalTree
	tree.Insert(iv(t, 10, 12))
	tree.Insert(iv(t, 2, 4))   // left, maxEnd 4
	tree.Insert(iv(t, 14, 18)) // right

	if !tree.Overlaps(iv(t, 15, 16)) {
		t.Error("Overlaps([15, 16)): got false, want true (right subtree holds [14, 18))")
	}
	if tree.Overlaps(iv(t, 5, 9)) {
		t.Error("Overlaps([5, 9)): got true, want false")
	}
}

// TestOverlaps_ChronologicalInserts covers the degenerate linked-list shape
// produced by monotonically increasing start times.
func TestOverlaps_ChronologicalInserts(t *testing.T) {
	var tree IntervalTree
	for s := 0; s < 50; s += 5 {
		tree.Insert(iv(t, s, s+4))
	}
	if tree.Len() != 10 {
		t.Fatalf("Len: got %d, want 10", tree.Len())
	}

	if !tree.Overlaps(iv(t, 23, 25)) {
		t.Error("Overlaps([23, 25)): got false, want true ([20, 24) is committed)")
	}
	if tree.Overlaps(iv(t, 4, 5)) {
		t.Error("Overlaps([4, 5)): got true, want false (gap between [0,4) and [5,9))")
	}
}

func TestInsert_EqualStartsGoRight(t *testing.T) {
	var tree IntervalTree
	tree.Insert(iv(t, 5, 6))
	tree.Insert(iv(t, 5, 30)) // same start — must still be reachable

	if !tree.Overlaps(iv(t, 20, 25)) {
		t.Error("Overlaps([20, 25)): got false, want true ([5, 30) inserted with a duplicate start)")
	}
}
