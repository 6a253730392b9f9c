package dispatch

import "fmt"

// Alert is a fraud alert: a weighted time interval to be assigned to a team.
// Alerts are immutable after construction — the scheduler only references
// them, it never mutates or destroys them.
type Alert struct {
	id       string
	start    int
	end      int
	urgency  int
	severity float64
	location string
}

// NewAlert validates and builds an Alert. The interval covers [start, end)
// for conflict purposes; end must not be less than start. Urgency and
// severity are expected to be positive in well-formed inputs.
func NewAlert(id string, start, end, urgency int, severity float64, location string) (*Alert, error) {
	if end < start {
		return nil, fmt.Errorf("alert %q: end %d is before start %d", id, end, start)
	}
	return &Alert{
		id:       id,
		start:    start,
		end:      end,
		urgency:  urgency,
		severity: severity,
		location: location,
	}, nil
}

// ID returns the alert identifier.
func (a *Alert) ID() string { return a.id }

// Start returns the inclusive interval start.
func (a *Alert) Start() int { return a.start }

// End returns the interval end (exclusive for conflict purposes).
func (a *Alert) End() int { return a.end }

// Urgency returns the urgency grade.
func (a *Alert) Urgency() int { return a.urgency }

// Severity returns the severity grade.
func (a *Alert) Severity() float64 { return a.severity }

// Location returns the branch location label. Informational only.
func (a *Alert) Location() string { return a.location }

// Weight is urgency × severity — the priority strength of the alert. It
// drives both the scheduler's sort order and the score numerator.
func (a *Alert) Weight() float64 { return float64(a.urgency) * a.severity }

// Duration returns end − start. May be zero.
func (a *Alert) Duration() int { return a.end - a.start }

func (a *Alert) String() string {
	return fmt.Sprintf("%s[%d-%d] u=%d s=%.2f loc=%s",
		a.id, a.start, a.end, a.urgency, a.severity, a.location)
}

// conflict reports whether a and b temporally overlap. Intervals that only
// touch at a shared boundary do not conflict, and a zero-duration interval
// never conflicts with anything — including an identical zero-duration
// interval at the same point.
func conflict(a, b *Alert) bool {
	return !(a.end <= b.start || a.start >= b.end)
}
