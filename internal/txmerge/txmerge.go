package txmerge

import "fmt"

// Priority ranks for the transaction ordering. Unknown labels rank Low.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Transaction is one entry of a branch transaction log.
type Transaction struct {
	Timestamp int
	Priority  int
	BranchID  int
	TxnID     int
}

// New builds a Transaction, mapping the priority label (High/Medium/other)
// to its numeric rank.
func New(timestamp int, priority string, branchID, txnID int) Transaction {
	rank := PriorityLow
	switch priority {
	case "High":
		rank = PriorityHigh
	case "Medium":
		rank = PriorityMedium
	}
	return Transaction{Timestamp: timestamp, Priority: rank, BranchID: branchID, TxnID: txnID}
}

// Compare orders transactions by timestamp ascending, then priority
// descending, then branch and transaction ID ascending. Returns a negative
// value when t sorts before o, zero when equal, positive otherwise.
func (t Transaction) Compare(o Transaction) int {
	if t.Timestamp != o.Timestamp {
		return t.Timestamp - o.Timestamp
	}
	if t.Priority != o.Priority {
		return o.Priority - t.Priority
	}
	if t.BranchID != o.BranchID {
		return t.BranchID - o.BranchID
	}
	return t.TxnID - o.TxnID
}

func (t Transaction) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", t.Timestamp, t.Priority, t.BranchID, t.TxnID)
}

// MergeK merges the given sorted logs into one globally sorted log. Each
// input log must already be sorted under Compare; empty logs are allowed.
// The merge is stable: on ties the transaction from the earlier log wins.
func MergeK(logs [][]Transaction) []Transaction {
	if len(logs) == 0 {
		return nil
	}
	return mergeRange(logs, 0, len(logs)-1)
}

func mergeRange(logs [][]Transaction, left, right int) []Transaction {
	if left == right {
		return logs[left]
	}
	mid := (left + right) / 2
	return mergeTwo(mergeRange(logs, left, mid), mergeRange(logs, mid+1, right))
}

func mergeTwo(a, b []Transaction) []Transaction {
	out := make([]Transaction, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Compare(b[j]) <= 0 {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Validate reports whether merged is globally ordered under Compare.
func Validate(merged []Transaction) bool {
	for i := 1; i < len(merged); i++ {
		if merged[i-1].Compare(merged[i]) > 0 {
			return false
		}
	}
	return true
}
