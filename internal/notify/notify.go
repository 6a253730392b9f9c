package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fraudwatch/fraudwatch/internal/config"
	"github.com/fraudwatch/fraudwatch/internal/report"
)

// Notifier posts run summaries to configured webhook targets.
type Notifier struct {
	webhooks []config.WebhookConfig
	client   *http.Client
}

// New creates a Notifier. A Notifier with no webhooks is valid —
// RunCompleted becomes a no-op.
func New(webhooks []config.WebhookConfig) *Notifier {
	return &Notifier{
		webhooks: webhooks,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// RunCompleted sends webhook notifications for run to all configured
// targets. Errors are logged but do not affect the caller.
func (n *Notifier) RunCompleted(run *report.Run) {
	for _, wh := range n.webhooks {
		url := wh.URL()
		if url == "" {
			continue
		}

		var err error
		switch wh.Type {
		case "slack":
			err = n.sendSlack(url, run)
		case "teams":
			err = n.sendTeams(url, run)
		case "http":
			err = n.sendHTTP(url, run)
		default:
			slog.Warn("notify: unknown webhook type — skipping", "type", wh.Type)
			continue
		}

		if err != nil {
			slog.Error("notify: webhook delivery failed",
				"type", wh.Type,
				"run", run.ID,
				"err", err,
			)
		} else {
			slog.Debug("notify: webhook delivered",
				"type", wh.Type,
				"run", run.ID,
			)
		}
	}
}

func summaryLine(run *report.Run) string {
	return fmt.Sprintf("run %s: %d/%d alerts assigned, %d unassigned, utilization %.2f",
		run.ID, run.TotalAssigned, run.AlertCount, len(run.UnassignedIDs), run.TotalUtilization)
}

func (n *Notifier) sendSlack(url string, run *report.Run) error {
	body, _ := json.Marshal(map[string]string{
		"text": fmt.Sprintf("*fraudwatch* %s", summaryLine(run)),
	})
	return n.post(url, body)
}

func (n *Notifier) sendTeams(url string, run *report.Run) error {
	payload := map[string]interface{}{
		"@type":      "MessageCard",
		"@context":   "http://schema.org/extensions",
		"themeColor": outcomeColor(run),
		"summary":    fmt.Sprintf("fraudwatch run %s", run.ID),
		"title":      "Fraudwatch scheduling run completed",
		"text":       summaryLine(run),
	}
	body, _ := json.Marshal(payload)
	return n.post(url, body)
}

func (n *Notifier) sendHTTP(url string, run *report.Run) error {
	body, _ := json.Marshal(map[string]interface{}{"run": run})
	return n.post(url, body)
}

func (n *Notifier) post(url string, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// outcomeColor maps the run outcome to a card color: green when everything
// was assigned, amber otherwise.
func outcomeColor(run *report.Run) string {
	if len(run.UnassignedIDs) == 0 {
		return "36B37E"
	}
	return "FFAB40"
}
