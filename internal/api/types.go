package api

import "github.com/fraudwatch/fraudwatch/internal/report"

// RunRequest is the body of POST /api/v1/runs. Explicit alerts win over
// generation; with no body (or an empty one) the configured generator
// defaults apply.
type RunRequest struct {
	// Count overrides the configured number of generated alerts.
	Count int `json:"count,omitempty"`

	// Seed overrides the generator seed. 0 means seed from the clock.
	Seed int64 `json:"seed,omitempty"`

	// Alerts, when non-empty, are scheduled as-is instead of generating.
	Alerts []AlertRequest `json:"alerts,omitempty"`
}

// AlertRequest is one explicit alert in a RunRequest.
type AlertRequest struct {
	ID       string  `json:"id"`
	Start    int     `json:"start"`
	End      int     `json:"end"`
	Urgency  int     `json:"urgency"`
	Severity float64 `json:"severity"`
	Location string  `json:"location"`
}

// RunResponse is the payload for POST /api/v1/runs, GET /api/v1/runs and
// GET /api/v1/runs/{id}.
type RunResponse struct {
	ID               string           `json:"id"`
	StartedAt        string           `json:"started_at"` // RFC3339
	RuntimeMs        float64          `json:"runtime_ms"`
	AlertCount       int              `json:"alert_count"`
	Teams            []report.TeamRow `json:"teams"`
	TotalAssigned    int              `json:"total_assigned"`
	TotalUtilization float64          `json:"total_utilization"`
	UnassignedIDs    []string         `json:"unassigned_ids"`
}

// TeamResponse is one roster entry in GET /api/v1/teams.
type TeamResponse struct {
	Name  string  `json:"name"`
	Skill float64 `json:"skill"`
}

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status      string `json:"status"`
	Teams       int    `json:"teams"`
	Runs        int    `json:"runs"`
	LatestRunID string `json:"latest_run_id,omitempty"`
	LatestRunAt string `json:"latest_run_at,omitempty"` // RFC3339
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
