package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes body to a temp file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
server:
  http_port: 9090
  broadcast_interval: 2s
  auth:
    mode: apikey
    key_env: FW_API_KEY
  history:
    limit: 25
    ttl: 30m
  webhooks:
    - type: slack
      url_env: FW_SLACK_URL
teams:
  - name: Alpha
    skill: 1.1
  - name: Delta
    skill: 1.4
generator:
  count: 500
  seed: 42
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.HTTPPort != 9090 {
		t.Errorf("HTTPPort: got %d, want 9090", cfg.Server.HTTPPort)
	}
	if cfg.Server.BroadcastInterval != 2*time.Second {
		t.Errorf("BroadcastInterval: got %v, want 2s", cfg.Server.BroadcastInterval)
	}
	if cfg.Server.History.Limit != 25 || cfg.Server.History.TTL != 30*time.Minute {
		t.Errorf("History: got %+v, want limit 25 ttl 30m", cfg.Server.History)
	}
	if cfg.Server.Auth.Mode != "apikey" || cfg.Server.Auth.KeyEnv != "FW_API_KEY" {
		t.Errorf("Auth: got %+v", cfg.Server.Auth)
	}
	if len(cfg.Teams) != 2 || cfg.Teams[1].Name != "Delta" || cfg.Teams[1].Skill != 1.4 {
		t.Errorf("Teams: got %+v", cfg.Teams)
	}
	if cfg.Generator.Count != 500 || cfg.Generator.Seed != 42 {
		t.Errorf("Generator: got %+v", cfg.Generator)
	}
	// Unset generator bounds keep their defaults.
	if cfg.Generator.MaxStart != 50 || cfg.Generator.MaxDuration != 6 {
		t.Errorf("Generator defaults: got %+v", cfg.Generator)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("HTTPPort: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.BroadcastInterval != DefaultBroadcastInterval {
		t.Errorf("BroadcastInterval: got %v, want %v", cfg.Server.BroadcastInterval, DefaultBroadcastInterval)
	}
	if cfg.Server.History.Limit != DefaultHistoryLimit || cfg.Server.History.TTL != DefaultHistoryTTL {
		t.Errorf("History: got %+v", cfg.Server.History)
	}

	// The classic roster applies when no teams are configured.
	roster := DefaultRoster()
	if len(cfg.Teams) != len(roster) {
		t.Fatalf("Teams: got %d, want %d", len(cfg.Teams), len(roster))
	}
	for i, want := range roster {
		if cfg.Teams[i] != want {
			t.Errorf("Teams[%d]: got %+v, want %+v", i, cfg.Teams[i], want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load on missing file: expected error, got nil")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "bad yaml",
			body:    "server: [unclosed",
			wantErr: "parse yaml",
		},
		{
			name:    "negative port",
			body:    "server:\n  http_port: -1\n",
			wantErr: "http_port",
		},
		{
			name:    "unknown auth mode",
			body:    "server:\n  auth:\n    mode: oauth\n",
			wantErr: "unknown mode",
		},
		{
			name:    "unknown webhook type",
			body:    "server:\n  webhooks:\n    - type: carrierpigeon\n",
			wantErr: "unknown type",
		},
		{
			name:    "unnamed team",
			body:    "teams:\n  - skill: 1.0\n",
			wantErr: "name is required",
		},
		{
			name:    "duplicate team",
			body:    "teams:\n  - name: Alpha\n    skill: 1.0\n  - name: Alpha\n    skill: 1.2\n",
			wantErr: "duplicate name",
		},
		{
			name:    "non-positive skill",
			body:    "teams:\n  - name: Alpha\n    skill: 0\n",
			wantErr: "skill must be positive",
		},
		{
			name:    "zero generator count",
			body:    "generator:\n  count: -5\n",
			wantErr: "count must be positive",
		},
		{
			name:    "severity bound too low",
			body:    "generator:\n  max_severity: 0.5\n",
			wantErr: "max_severity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load: expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestAuthConfig_Resolution(t *testing.T) {
	a := AuthConfig{}
	if a.EffectiveHeader() != DefaultAuthHeader {
		t.Errorf("EffectiveHeader: got %q, want %q", a.EffectiveHeader(), DefaultAuthHeader)
	}
	if a.Key() != "" {
		t.Errorf("Key with no env: got %q, want empty", a.Key())
	}

	t.Setenv("FW_TEST_KEY", "secret")
	a = AuthConfig{Header: "X-Custom", KeyEnv: "FW_TEST_KEY"}
	if a.EffectiveHeader() != "X-Custom" {
		t.Errorf("EffectiveHeader: got %q, want X-Custom", a.EffectiveHeader())
	}
	if a.Key() != "secret" {
		t.Errorf("Key: got %q, want secret", a.Key())
	}
}
