package report

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/fraudwatch/fraudwatch/internal/dispatch"
)

// TeamRow is the per-team slice of a Run summary.
type TeamRow struct {
	Name        string   `json:"name"`
	Skill       float64  `json:"skill"`
	Fatigue     float64  `json:"fatigue"`
	Assigned    int      `json:"assigned"`
	Utilization float64  `json:"utilization"`
	AvgInterval float64  `json:"avg_interval"`
	AlertIDs    []string `json:"alert_ids"`
}

// Run is the full summary of one scheduling pass.
type Run struct {
	ID               string        `json:"id"`
	StartedAt        time.Time     `json:"started_at"`
	Duration         time.Duration `json:"duration"`
	AlertCount       int           `json:"alert_count"`
	Teams            []TeamRow     `json:"teams"`
	TotalAssigned    int           `json:"total_assigned"`
	TotalUtilization float64       `json:"total_utilization"`
	UnassignedIDs    []string      `json:"unassigned_ids"`
	MemoryDeltaMB    float64       `json:"memory_delta_mb"`
}

// Build reads the post-Schedule team state into a Run. teams and unassigned
// come straight from the Scheduler; alertCount is the input size so callers
// can cross-check TotalAssigned + len(UnassignedIDs) against it.
func Build(id string, startedAt time.Time, duration time.Duration,
	alertCount int, teams []*dispatch.Team, unassigned []*dispatch.Alert,
	memDeltaMB float64) *Run {

	run := &Run{
		ID:            id,
		StartedAt:     startedAt,
		Duration:      duration,
		AlertCount:    alertCount,
		MemoryDeltaMB: memDeltaMB,
		UnassignedIDs: make([]string, 0, len(unassigned)),
	}

	for _, team := range teams {
		assigned := team.Assigned()
		row := TeamRow{
			Name:        team.Name(),
			Skill:       team.Skill(),
			Fatigue:     team.Fatigue(),
			Assigned:    len(assigned),
			Utilization: team.Utilization(),
			AlertIDs:    make([]string, 0, len(assigned)),
		}
		if row.Assigned > 0 {
			row.AvgInterval = row.Utilization / float64(row.Assigned)
		}
		for _, a := range assigned {
			row.AlertIDs = append(row.AlertIDs, a.ID())
		}
		run.Teams = append(run.Teams, row)
		run.TotalAssigned += row.Assigned
		run.TotalUtilization += row.Utilization
	}

	for _, a := range unassigned {
		run.UnassignedIDs = append(run.UnassignedIDs, a.ID())
	}
	return run
}

// WriteTable renders the investigation summary table followed by the run
// totals.
func (r *Run) WriteTable(w io.Writer) {
	fmt.Fprintln(w, "=== FRAUD ALERT INVESTIGATION SUMMARY ===")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Team\tSkill\tFatigue\tAssigned\tTotal Utilization\tAvg Interval Length")
	for _, row := range r.Teams {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%d\t%.2f\t%.2f\n",
			row.Name, row.Skill, row.Fatigue, row.Assigned, row.Utilization, row.AvgInterval)
	}
	tw.Flush()

	fmt.Fprintf(w, "Max non-overlapping alerts: %d\n", r.TotalAssigned)
	fmt.Fprintf(w, "Unassigned alerts: %d\n", len(r.UnassignedIDs))
	fmt.Fprintf(w, "Total utilization: %.2f\n", r.TotalUtilization)
	fmt.Fprintf(w, "Runtime (ms): %.3f\n", float64(r.Duration.Nanoseconds())/1e6)
	fmt.Fprintf(w, "Memory used (MB): %.3f\n", r.MemoryDeltaMB)
}

// TimingCSV runs the measure callback once per input size and writes the
// Size,Runtime_ms experiment table (for graphing externally).
func TimingCSV(w io.Writer, sizes []int, measure func(size int) time.Duration) {
	fmt.Fprintln(w, "Size,Runtime_ms")
	for _, size := range sizes {
		d := measure(size)
		fmt.Fprintf(w, "%d,%.3f\n", size, float64(d.Nanoseconds())/1e6)
	}
}

// MemoryUsageMB returns the current heap allocation in megabytes.
func MemoryUsageMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc) / (1024.0 * 1024.0)
}
