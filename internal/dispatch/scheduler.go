package dispatch

import "sort"

// Scheduler produces a conflict-free (per team) assignment of alerts to
// teams. It is a single-pass greedy heuristic with no backtracking: once an
// alert is assigned it is never moved, so there is no guarantee of a
// maximum-weight packing across multiple teams.
//
// A Scheduler is single-use: Schedule mutates the given Teams in place, and
// re-running it double-mutates fatigue and assignment lists.
type Scheduler struct {
	alerts     []*Alert
	teams      []*Team
	unassigned []*Alert
}

// NewScheduler builds a Scheduler over the given alerts and teams. Both
// slices are referenced, not copied; the caller's alert order is preserved.
func NewScheduler(alerts []*Alert, teams []*Team) *Scheduler {
	return &Scheduler{alerts: alerts, teams: teams}
}

// Schedule runs the greedy pass. Alerts are taken in descending weight order
// (stable, so equal weights keep input order). For each alert, every
// conflict-free team is scored and the alert goes to the strictly
// best-scoring one — ties keep the earliest team in iteration order, and a
// score must exceed 0 to win at all. Alerts with no eligible team are
// silently left unassigned; read them back with Unassigned.
//
// All observable output is the mutated Team state (Assigned, Fatigue,
// Utilization) — Schedule returns nothing.
func (s *Scheduler) Schedule() {
	sorted := make([]*Alert, len(s.alerts))
	copy(sorted, s.alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight() > sorted[j].Weight()
	})

	s.unassigned = nil
	for _, a := range sorted {
		var best *Team
		bestScore := 0.0
		for _, t := range s.teams {
			if t.HasConflict(a) {
				continue
			}
			if sc := t.Score(a); sc > bestScore {
				bestScore = sc
				best = t
			}
		}
		if best != nil {
			best.Assign(a)
		} else {
			s.unassigned = append(s.unassigned, a)
		}
	}
}

// Unassigned returns the alerts the last Schedule call could not place —
// every team conflicted, or no eligible score exceeded 0. Order follows the
// scheduling (descending weight) order. Nil before Schedule has run.
func (s *Scheduler) Unassigned() []*Alert { return s.unassigned }
