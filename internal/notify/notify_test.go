package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fraudwatch/fraudwatch/internal/config"
	"github.com/fraudwatch/fraudwatch/internal/report"
)

func sampleRun() *report.Run {
	return &report.Run{
		ID:               "run-1",
		AlertCount:       5,
		TotalAssigned:    4,
		TotalUtilization: 12.5,
		UnassignedIDs:    []string{"O3"},
	}
}

// target spins up a webhook receiver and wires a Notifier of the given type
// at it via the environment.
func target(t *testing.T, whType string, status int) (*Notifier, *[]byte) {
	t.Helper()

	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("FW_TEST_WEBHOOK_URL", srv.URL)
	n := New([]config.WebhookConfig{{Type: whType, URLEnv: "FW_TEST_WEBHOOK_URL"}})
	return n, &body
}

func TestRunCompleted_Slack(t *testing.T) {
	n, body := target(t, "slack", http.StatusOK)
	n.RunCompleted(sampleRun())

	var payload map[string]string
	if err := json.Unmarshal(*body, &payload); err != nil {
		t.Fatalf("unmarshal slack payload: %v (body: %s)", err, *body)
	}
	if !strings.Contains(payload["text"], "run run-1") {
		t.Errorf("slack text: got %q, want run ID mentioned", payload["text"])
	}
	if !strings.Contains(payload["text"], "4/5 alerts assigned") {
		t.Errorf("slack text: got %q, want assignment summary", payload["text"])
	}
}

func TestRunCompleted_Teams(t *testing.T) {
	n, body := target(t, "teams", http.StatusOK)
	n.RunCompleted(sampleRun())

	var payload map[string]interface{}
	if err := json.Unmarshal(*body, &payload); err != nil {
		t.Fatalf("unmarshal teams payload: %v", err)
	}
	if payload["@type"] != "MessageCard" {
		t.Errorf("@type: got %v, want MessageCard", payload["@type"])
	}
	// One alert unassigned → amber card.
	if payload["themeColor"] != "FFAB40" {
		t.Errorf("themeColor: got %v, want FFAB40", payload["themeColor"])
	}
}

func TestRunCompleted_HTTP(t *testing.T) {
	n, body := target(t, "http", http.StatusOK)
	n.RunCompleted(sampleRun())

	var payload struct {
		Run *report.Run `json:"run"`
	}
	if err := json.Unmarshal(*body, &payload); err != nil {
		t.Fatalf("unmarshal http payload: %v", err)
	}
	if payload.Run == nil || payload.Run.ID != "run-1" {
		t.Errorf("run payload: got %+v, want run-1", payload.Run)
	}
}

func TestRunCompleted_ErrorsDoNotPropagate(t *testing.T) {
	n, _ := target(t, "http", http.StatusInternalServerError)
	// Must not panic or fail the caller.
	n.RunCompleted(sampleRun())
}

func TestRunCompleted_NoWebhooks(t *testing.T) {
	n := New(nil)
	n.RunCompleted(sampleRun())
}

func TestRunCompleted_UnsetURL(t *testing.T) {
	n := New([]config.WebhookConfig{{Type: "slack", URLEnv: "FW_UNSET_WEBHOOK_URL"}})
	n.RunCompleted(sampleRun())
}
