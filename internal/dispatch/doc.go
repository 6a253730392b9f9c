// Package dispatch implements the conflict-aware greedy assignment of fraud
// alerts to investigation teams.
//
// The pieces, leaves first:
//   - Alert — an immutable weighted time interval (weight = urgency × severity).
//   - IntervalTree — a per-team augmented BST answering "does any committed
//     interval overlap this candidate?". Keyed on start, each node carries the
//     maximum end value of its subtree. No rebalancing: tree shape follows
//     insertion order, which matches the documented behavior of the scheduler
//     even though chronological inputs degrade queries to linear time.
//   - Team — a stateful assignment target with a skill factor, accumulating
//     fatigue, and an owned IntervalTree over its assigned alerts.
//   - Scheduler — a single-pass greedy loop: alerts sorted by descending
//     weight (stable), each assigned to the best-scoring conflict-free team.
//
// Overlap semantics are half-open at the boundary: intervals that only touch
// (a.end == b.start) do not conflict, and a zero-duration interval never
// conflicts with anything.
//
// A Scheduler is single-use. Schedule mutates the Team values in place, so
// running it twice over the same teams double-counts fatigue and assignments.
// Construct fresh Teams for every run.
package dispatch
