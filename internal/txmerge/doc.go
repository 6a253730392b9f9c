// Package txmerge merges K independently-sorted per-branch transaction logs
// into one globally ordered log with a divide-and-conquer two-way merge.
//
// Ordering is (timestamp asc, priority desc, branch asc, txn asc). The
// two-way merge takes from the left log on ties, so equal transactions keep
// their branch-relative order.
//
// This is a standalone sorting exercise — it shares no state with the
// dispatch scheduler.
package txmerge
