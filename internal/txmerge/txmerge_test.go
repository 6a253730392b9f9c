package txmerge

import (
	"math/rand"
	"sort"
	"testing"
)

func TestNew_PriorityRanks(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{label: "High", want: PriorityHigh},
		{label: "Medium", want: PriorityMedium},
		{label: "Low", want: PriorityLow},
		{label: "bogus", want: PriorityLow},
	}
	for _, tt := range tests {
		if got := New(0, tt.label, 0, 0).Priority; got != tt.want {
			t.Errorf("New(%q).Priority: got %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestCompare_Ordering(t *testing.T) {
	tests := []struct {
		name string
		a, b Transaction
		want int // sign only
	}{
		{
			name: "earlier timestamp first",
			a:    New(1, "Low", 0, 0), b: New(2, "High", 0, 0), want: -1,
		},
		{
			name: "same timestamp, higher priority first",
			a:    New(10, "High", 0, 1), b: New(10, "Medium", 0, 2), want: -1,
		},
		{
			name: "same timestamp and priority, lower branch first",
			a:    New(10, "High", 0, 1), b: New(10, "High", 1, 1), want: -1,
		},
		{
			name: "tiebreak on txn id",
			a:    New(10, "High", 0, 1), b: New(10, "High", 0, 2), want: -1,
		},
		{
			name: "equal",
			a:    New(10, "High", 0, 1), b: New(10, "High", 0, 1), want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Compare(tt.b)
			switch {
			case tt.want < 0 && got >= 0:
				t.Errorf("Compare: got %d, want negative", got)
			case tt.want == 0 && got != 0:
				t.Errorf("Compare: got %d, want 0", got)
			}
			if tt.want != 0 && tt.b.Compare(tt.a) == got {
				t.Errorf("Compare not antisymmetric: both directions returned %d", got)
			}
		})
	}
}

// TestMergeK_DuplicateTimestamps reproduces the duplicate
// timestamp/priority edge case: equal timestamps must interleave by priority
// descending, then branch ascending.
func TestMergeK_DuplicateTimestamps(t *testing.T) {
	logs := [][]Transaction{
		{New(10, "High", 0, 1), New(10, "Medium", 0, 2)},
		{New(10, "High", 1, 1), New(10, "Low", 1, 2)},
	}

	merged := MergeK(logs)
	if !Validate(merged) {
		t.Fatalf("Validate: merged output out of order: %v", merged)
	}

	want := []Transaction{
		New(10, "High", 0, 1),
		New(10, "High", 1, 1),
		New(10, "Medium", 0, 2),
		New(10, "Low", 1, 2),
	}
	if len(merged) != len(want) {
		t.Fatalf("merged length: got %d, want %d", len(merged), len(want))
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Errorf("merged[%d]: got %v, want %v", i, merged[i], want[i])
		}
	}
}

func TestMergeK_EmptyLogs(t *testing.T) {
	logs := [][]Transaction{
		nil,
		{},
		{New(10, "High", 0, 1), New(10, "Medium", 0, 2)},
	}

	merged := MergeK(logs)
	if len(merged) != 2 {
		t.Fatalf("merged length: got %d, want 2", len(merged))
	}
	if !Validate(merged) {
		t.Errorf("Validate: got false, want true")
	}
}

func TestMergeK_NoLogs(t *testing.T) {
	if got := MergeK(nil); len(got) != 0 {
		t.Errorf("MergeK(nil): got %d transactions, want 0", len(got))
	}
}

func TestMergeK_SingleLog(t *testing.T) {
	log := []Transaction{New(1, "High", 0, 1), New(5, "Low", 0, 2)}
	merged := MergeK([][]Transaction{log})
	if len(merged) != 2 || merged[0] != log[0] || merged[1] != log[1] {
		t.Errorf("MergeK single log: got %v, want %v", merged, log)
	}
}

func TestMergeK_RandomBranches(t *testing.T) {
	r := rand.New(rand.NewSource(777))
	labels := []string{"Low", "Medium", "High"}

	const branches, perBranch = 8, 500
	logs := make([][]Transaction, branches)
	for b := 0; b < branches; b++ {
		log := make([]Transaction, 0, perBranch)
		ts := 0
		for i := 0; i < perBranch; i++ {
			ts += r.Intn(5)
			log = append(log, New(ts, labels[r.Intn(3)], b, i))
		}
		sort.Slice(log, func(i, j int) bool { return log[i].Compare(log[j]) < 0 })
		logs[b] = log
	}

	merged := MergeK(logs)
	if len(merged) != branches*perBranch {
		t.Fatalf("merged length: got %d, want %d", len(merged), branches*perBranch)
	}
	if !Validate(merged) {
		t.Error("Validate: got false, want true")
	}
}

func TestValidate_DetectsDisorder(t *testing.T) {
	out := []Transaction{New(5, "Low", 0, 1), New(1, "Low", 0, 2)}
	if Validate(out) {
		t.Error("Validate on out-of-order input: got true, want false")
	}
	if !Validate(nil) {
		t.Error("Validate(nil): got false, want true")
	}
}
