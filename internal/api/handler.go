package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fraudwatch/fraudwatch/internal/config"
	"github.com/fraudwatch/fraudwatch/internal/metrics"
	"github.com/fraudwatch/fraudwatch/internal/notify"
	"github.com/fraudwatch/fraudwatch/internal/report"
	"github.com/fraudwatch/fraudwatch/internal/store"
)

// Handler is the HTTP handler for all /api/v1/* endpoints plus /metrics.
// The config function returns the current (possibly hot-reloaded) config so
// each run picks up the latest roster and generator defaults.
type Handler struct {
	store    *store.Store
	cfg      func() *config.Config
	notifier *notify.Notifier
	mux      *http.ServeMux
}

// New creates a Handler wired to the given run store and registers all
// routes.
func New(st *store.Store, cfg func() *config.Config, notifier *notify.Notifier) http.Handler {
	h := &Handler{store: st, cfg: cfg, notifier: notifier, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/v1/health", h.health)
	h.mux.HandleFunc("/api/v1/teams", h.teams)
	h.mux.HandleFunc("/api/v1/runs", h.runs)
	h.mux.HandleFunc("/api/v1/runs/", h.getRun) // subtree — extracts {id}
	h.mux.HandleFunc("/metrics", h.metrics)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health — liveness plus store stats.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp := HealthResponse{
		Status: "ok",
		Teams:  len(h.cfg().Teams),
		Runs:   h.store.Count(),
	}
	if e, ok := h.store.Latest(); ok {
		resp.LatestRunID = e.Run.ID
		resp.LatestRunAt = e.Run.StartedAt.Format(time.RFC3339)
	}
	jsonResp(w, http.StatusOK, resp)
}

// teams returns GET /api/v1/teams — the current roster.
func (h *Handler) teams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	roster := h.cfg().Teams
	out := make([]TeamResponse, 0, len(roster))
	for _, tc := range roster {
		out = append(out, TeamResponse{Name: tc.Name, Skill: tc.Skill})
	}
	jsonResp(w, http.StatusOK, out)
}

// runs dispatches GET (list) and POST (execute) on /api/v1/runs.
func (h *Handler) runs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listRuns(w, r)
	case http.MethodPost:
		h.createRun(w, r)
	default:
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// listRuns returns GET /api/v1/runs — retained runs, newest first.
func (h *Handler) listRuns(w http.ResponseWriter, _ *http.Request) {
	entries := h.store.List()
	out := make([]RunResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToRunResponse(e.Run))
	}
	jsonResp(w, http.StatusOK, out)
}

// getRun returns GET /api/v1/runs/{id} — a single retained run.
func (h *Handler) getRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/runs/")
	if id == "" {
		// Redirect bare /api/v1/runs/ to the list handler.
		h.listRuns(w, r)
		return
	}

	e, ok := h.store.Get(id)
	if !ok {
		jsonErr(w, http.StatusNotFound, "run not found")
		return
	}
	jsonResp(w, http.StatusOK, ToRunResponse(e.Run))
}

// metrics returns GET /metrics — the latest run in text exposition format.
func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	e, ok := h.store.Latest()
	if !ok {
		// No runs yet — an empty exposition body is valid.
		return
	}
	if err := metrics.Encode(w, e.Run); err != nil {
		slog.Error("api: metrics encoding failed", "run", e.Run.ID, "err", err)
	}
}

// --- helpers ----------------------------------------------------------------

// ToRunResponse converts a stored run into its wire shape. Shared with the
// WebSocket hub, which broadcasts the same schema.
func ToRunResponse(run *report.Run) RunResponse {
	return RunResponse{
		ID:               run.ID,
		StartedAt:        run.StartedAt.Format(time.RFC3339),
		RuntimeMs:        float64(run.Duration.Nanoseconds()) / 1e6,
		AlertCount:       run.AlertCount,
		Teams:            run.Teams,
		TotalAssigned:    run.TotalAssigned,
		TotalUtilization: run.TotalUtilization,
		UnassignedIDs:    run.UnassignedIDs,
	}
}

func jsonResp(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("api: response encoding failed", "err", err)
	}
}

func jsonErr(w http.ResponseWriter, status int, msg string) {
	jsonResp(w, status, errorResponse{Error: msg})
}
