package dispatch

import "fmt"

const (
	// initialFatigue is every team's fatigue at construction.
	initialFatigue = 1.0

	// fatiguePerUnit is the fatigue added per unit of assigned duration.
	fatiguePerUnit = 0.05

	// conflictPenalty multiplies fatigue when scoring an alert the team
	// already conflicts with.
	conflictPenalty = 5.0
)

// Team is an investigation team: a mutable assignment target with a fixed
// skill factor, fatigue that only ever grows, and an owned IntervalTree over
// its assigned alerts.
//
// A Team must not be shared across concurrent scheduling passes — Score
// depends on fatigue, which is updated mid-pass.
type Team struct {
	name     string
	skill    float64
	fatigue  float64
	assigned []*Alert
	tree     IntervalTree
}

// NewTeam builds a Team with fatigue 1.0 and an empty assignment history.
// skill models expertise scaling alert weights; it must be positive.
func NewTeam(name string, skill float64) *Team {
	return &Team{name: name, skill: skill, fatigue: initialFatigue}
}

// HasConflict reports whether a overlaps any alert already assigned to the
// team.
func (t *Team) HasConflict(a *Alert) bool {
	return t.tree.Overlaps(a)
}

// Score quantifies how desirable assigning a to this team is:
//
//	weight × skill / (fatigue × penalty)
//
// The 5× conflict penalty is unreachable through the Scheduler, which only
// scores conflict-free teams; it is kept for callers scoring teams directly.
func (t *Team) Score(a *Alert) float64 {
	base := a.Weight() * t.skill
	penalty := t.fatigue
	if t.HasConflict(a) {
		penalty *= conflictPenalty
	}
	return base / penalty
}

// Assign commits a to the team: it is appended to the assignment history,
// inserted into the interval tree, and fatigue grows by 0.05 per unit of
// duration. This is the only mutator of Team state.
func (t *Team) Assign(a *Alert) {
	t.assigned = append(t.assigned, a)
	t.tree.Insert(a)
	t.fatigue += fatiguePerUnit * float64(a.Duration())
}

// Utilization is the total assigned duration, Σ(end − start).
func (t *Team) Utilization() float64 {
	var sum float64
	for _, a := range t.assigned {
		sum += float64(a.Duration())
	}
	return sum
}

// Name returns the team's reporting identity.
func (t *Team) Name() string { return t.name }

// Skill returns the constant skill factor.
func (t *Team) Skill() float64 { return t.skill }

// Fatigue returns the current fatigue value. It starts at 1.0 and is
// monotonically non-decreasing over the team's lifetime.
func (t *Team) Fatigue() float64 { return t.fatigue }

// Assigned returns the alerts assigned to the team, in assignment order.
// Callers must not modify the returned slice.
func (t *Team) Assigned() []*Alert { return t.assigned }

func (t *Team) String() string {
	return fmt.Sprintf("%s skill=%.2f fatigue=%.2f assigned=%d utilization=%.2f",
		t.name, t.skill, t.fatigue, len(t.assigned), t.Utilization())
}
