package generate

import (
	"fmt"
	"math/rand"

	"github.com/fraudwatch/fraudwatch/internal/dispatch"
)

// Params bounds the random alert distributions.
type Params struct {
	// MaxStart bounds the interval start: start ∈ [0, MaxStart).
	MaxStart int

	// MaxDuration bounds the interval length: duration ∈ [1, MaxDuration].
	MaxDuration int

	// MaxUrgency bounds the urgency grade: urgency ∈ [1, MaxUrgency].
	MaxUrgency int

	// MaxSeverity bounds the severity grade: severity ∈ [1.0, MaxSeverity).
	MaxSeverity float64

	// Branches is the number of distinct location labels (Branch0..BranchN-1).
	Branches int
}

// DefaultParams returns the canonical simulation distributions.
func DefaultParams() Params {
	return Params{
		MaxStart:    50,
		MaxDuration: 6,
		MaxUrgency:  5,
		MaxSeverity: 5.0,
		Branches:    10,
	}
}

// Batch generates count random alerts with IDs A0..A<count-1> drawn from the
// distributions in p. The same seed always yields the same batch.
func Batch(r *rand.Rand, count int, p Params) []*dispatch.Alert {
	alerts := make([]*dispatch.Alert, 0, count)
	for i := 0; i < count; i++ {
		start := r.Intn(p.MaxStart)
		end := start + 1 + r.Intn(p.MaxDuration)
		urgency := 1 + r.Intn(p.MaxUrgency)
		severity := 1 + r.Float64()*(p.MaxSeverity-1)
		location := fmt.Sprintf("Branch%d", r.Intn(p.Branches))

		a, err := dispatch.NewAlert(fmt.Sprintf("A%d", i), start, end, urgency, severity, location)
		if err != nil {
			// Unreachable: end is always strictly greater than start.
			continue
		}
		alerts = append(alerts, a)
	}
	return alerts
}
