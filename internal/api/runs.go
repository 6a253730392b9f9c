package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fraudwatch/fraudwatch/internal/dispatch"
	"github.com/fraudwatch/fraudwatch/internal/generate"
	"github.com/fraudwatch/fraudwatch/internal/report"
)

// createRun handles POST /api/v1/runs: build the input alerts, run the greedy
// scheduler over a fresh roster, store the summary and answer with it.
func (h *Handler) createRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		jsonErr(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	cfg := h.cfg()

	alerts, err := h.buildAlerts(req, cfg.Generator.Count, cfg.Generator.Seed)
	if err != nil {
		jsonErr(w, http.StatusBadRequest, err.Error())
		return
	}

	// Fresh teams per run: the scheduler mutates them and is single-use.
	teams := make([]*dispatch.Team, 0, len(cfg.Teams))
	for _, tc := range cfg.Teams {
		teams = append(teams, dispatch.NewTeam(tc.Name, tc.Skill))
	}

	memBefore := report.MemoryUsageMB()
	startedAt := time.Now()

	s := dispatch.NewScheduler(alerts, teams)
	s.Schedule()

	duration := time.Since(startedAt)
	memAfter := report.MemoryUsageMB()

	run := report.Build(uuid.NewString(), startedAt, duration,
		len(alerts), teams, s.Unassigned(), memAfter-memBefore)
	h.store.Put(run)

	slog.Info("run completed",
		"run", run.ID,
		"alerts", run.AlertCount,
		"assigned", run.TotalAssigned,
		"unassigned", len(run.UnassignedIDs),
		"runtime_ms", float64(duration.Nanoseconds())/1e6,
	)
	go h.notifier.RunCompleted(run)

	jsonResp(w, http.StatusCreated, ToRunResponse(run))
}

// buildAlerts turns a RunRequest into the scheduler input: explicit alerts
// when given, a generated batch otherwise.
func (h *Handler) buildAlerts(req RunRequest, defaultCount int, defaultSeed int64) ([]*dispatch.Alert, error) {
	if len(req.Alerts) > 0 {
		alerts := make([]*dispatch.Alert, 0, len(req.Alerts))
		for i, ar := range req.Alerts {
			a, err := dispatch.NewAlert(ar.ID, ar.Start, ar.End, ar.Urgency, ar.Severity, ar.Location)
			if err != nil {
				return nil, fmt.Errorf("alerts[%d]: %w", i, err)
			}
			alerts = append(alerts, a)
		}
		return alerts, nil
	}

	count := req.Count
	if count <= 0 {
		count = defaultCount
	}
	seed := req.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := h.cfg().Generator
	params := generate.Params{
		MaxStart:    g.MaxStart,
		MaxDuration: g.MaxDuration,
		MaxUrgency:  g.MaxUrgency,
		MaxSeverity: g.MaxSeverity,
		Branches:    g.Branches,
	}
	return generate.Batch(rand.New(rand.NewSource(seed)), count, params), nil
}
