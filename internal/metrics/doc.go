// Package metrics encodes a scheduling Run as Prometheus text exposition
// format, served at /metrics and printable from the simulation CLI.
//
// Exported families:
//
//	fraudwatch_run_duration_seconds      gauge
//	fraudwatch_run_alerts                gauge
//	fraudwatch_run_assigned              gauge
//	fraudwatch_run_unassigned            gauge
//	fraudwatch_team_assigned{team}       gauge
//	fraudwatch_team_fatigue{team}        gauge
//	fraudwatch_team_utilization{team}    gauge
//	fraudwatch_team_skill{team}          gauge
package metrics
