// Package report turns the mutated team state left behind by a scheduling
// pass into a Run summary: per-team rows (skill, fatigue, assigned count,
// utilization, average interval length) plus run-level totals, timing and
// memory figures.
//
// Run is the value the store keeps, the API serves, and the WebSocket hub
// broadcasts. WriteTable renders the console investigation summary; TimingCSV
// renders the Size,Runtime_ms experiment output.
package report
