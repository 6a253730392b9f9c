// Package generate produces randomized fraud-alert batches for simulations
// and on-demand scheduling runs.
//
// The default distributions are: start ∈ [0, 50), duration ∈ [1, 6],
// urgency ∈ [1, 5], severity ∈ [1.0, 5.0), location Branch0–Branch9.
// Batch takes an explicit *rand.Rand so callers (and tests) control the seed
// — the scheduler itself has no dependency on how alerts are produced.
package generate
