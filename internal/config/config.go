package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultHTTPPort          = 8080
	DefaultBroadcastInterval = 5 * time.Second
	DefaultHistoryLimit      = 100
	DefaultHistoryTTL        = time.Hour
	DefaultAuthHeader        = "X-Api-Key"
	DefaultGeneratorCount    = 1000
)

// Config is the top-level fraudwatch configuration. Fields map 1:1 to
// config.example.yaml.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Teams     []TeamConfig    `yaml:"teams"`
	Generator GeneratorConfig `yaml:"generator"`
}

// ServerConfig holds all service-side settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API and WebSocket hub listen on.
	HTTPPort int `yaml:"http_port"`

	// Auth configures API-key authentication for /api/v1 requests.
	Auth AuthConfig `yaml:"auth"`

	// BroadcastInterval controls how often the WebSocket hub pushes the
	// latest run to connected clients.
	BroadcastInterval time.Duration `yaml:"broadcast_interval"`

	// History bounds the in-memory run store.
	History HistoryConfig `yaml:"history"`

	// Webhooks are notified whenever a scheduling run completes.
	Webhooks []WebhookConfig `yaml:"webhooks"`
}

// AuthConfig configures REST API authentication.
type AuthConfig struct {
	// Mode is one of: apikey | none.
	Mode string `yaml:"mode"`

	// Header is the HTTP header carrying the key (default "X-Api-Key").
	Header string `yaml:"header"`

	// KeyEnv is the name of the environment variable holding the expected key.
	KeyEnv string `yaml:"key_env"`
}

// EffectiveHeader returns the configured header name or the default.
func (a AuthConfig) EffectiveHeader() string {
	if a.Header == "" {
		return DefaultAuthHeader
	}
	return a.Header
}

// Key returns the API key resolved from the environment. Empty if KeyEnv is
// unset or the variable is not found.
func (a AuthConfig) Key() string {
	if a.KeyEnv == "" {
		return ""
	}
	return os.Getenv(a.KeyEnv)
}

// HistoryConfig bounds the in-memory run store.
type HistoryConfig struct {
	// Limit is the maximum number of retained runs.
	Limit int `yaml:"limit"`

	// TTL is how long a run stays readable before eviction.
	TTL time.Duration `yaml:"ttl"`
}

// TeamConfig describes one roster entry. Fresh Team values are built from the
// roster for every scheduling run — teams are single-use by contract.
type TeamConfig struct {
	// Name is the team's unique reporting identity.
	Name string `yaml:"name"`

	// Skill is the positive constant scaling alert weights for this team.
	Skill float64 `yaml:"skill"`
}

// GeneratorConfig holds the default random-alert distributions.
type GeneratorConfig struct {
	// Count is the default number of alerts per generated run.
	Count int `yaml:"count"`

	// Seed seeds the generator; 0 means seed from the clock per run.
	Seed int64 `yaml:"seed"`

	// MaxStart bounds interval starts: start ∈ [0, MaxStart).
	MaxStart int `yaml:"max_start"`

	// MaxDuration bounds interval lengths: duration ∈ [1, MaxDuration].
	MaxDuration int `yaml:"max_duration"`

	// MaxUrgency bounds urgency grades: urgency ∈ [1, MaxUrgency].
	MaxUrgency int `yaml:"max_urgency"`

	// MaxSeverity bounds severity grades: severity ∈ [1.0, MaxSeverity).
	MaxSeverity float64 `yaml:"max_severity"`

	// Branches is the number of distinct location labels.
	Branches int `yaml:"branches"`
}

// WebhookConfig defines one run-completion webhook target.
type WebhookConfig struct {
	// Type is one of: slack | teams | http.
	Type string `yaml:"type"`

	// URLEnv is the name of the environment variable holding the webhook URL.
	URLEnv string `yaml:"url_env"`
}

// URL returns the webhook URL resolved from the environment.
func (w WebhookConfig) URL() string {
	if w.URLEnv == "" {
		return ""
	}
	return os.Getenv(w.URLEnv)
}

// Load reads and parses the YAML config file at path. Missing optional fields
// are filled with sensible defaults, including the classic Alpha/Beta/Gamma
// roster when no teams are configured.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if len(cfg.Teams) == 0 {
		cfg.Teams = DefaultRoster()
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// DefaultRoster returns the classic three-team roster.
func DefaultRoster() []TeamConfig {
	return []TeamConfig{
		{Name: "Alpha", Skill: 1.1},
		{Name: "Beta", Skill: 0.9},
		{Name: "Gamma", Skill: 1.0},
	}
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:          DefaultHTTPPort,
			BroadcastInterval: DefaultBroadcastInterval,
			History: HistoryConfig{
				Limit: DefaultHistoryLimit,
				TTL:   DefaultHistoryTTL,
			},
		},
		Generator: GeneratorConfig{
			Count:       DefaultGeneratorCount,
			MaxStart:    50,
			MaxDuration: 6,
			MaxUrgency:  5,
			MaxSeverity: 5.0,
			Branches:    10,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if cfg.Server.BroadcastInterval <= 0 {
		return fmt.Errorf("server.broadcast_interval must be positive")
	}
	if cfg.Server.History.Limit <= 0 {
		return fmt.Errorf("server.history.limit must be positive")
	}
	if cfg.Server.History.TTL <= 0 {
		return fmt.Errorf("server.history.ttl must be positive")
	}
	switch cfg.Server.Auth.Mode {
	case "apikey", "none", "":
	default:
		return fmt.Errorf("server.auth: unknown mode %q", cfg.Server.Auth.Mode)
	}
	for i, wh := range cfg.Server.Webhooks {
		switch wh.Type {
		case "slack", "teams", "http":
		default:
			return fmt.Errorf("server.webhooks[%d]: unknown type %q", i, wh.Type)
		}
	}

	seen := make(map[string]bool, len(cfg.Teams))
	for i, team := range cfg.Teams {
		if team.Name == "" {
			return fmt.Errorf("teams[%d]: name is required", i)
		}
		if seen[team.Name] {
			return fmt.Errorf("teams[%d]: duplicate name %q", i, team.Name)
		}
		seen[team.Name] = true
		if team.Skill <= 0 {
			return fmt.Errorf("teams[%d] %q: skill must be positive", i, team.Name)
		}
	}

	g := cfg.Generator
	if g.Count <= 0 {
		return fmt.Errorf("generator.count must be positive")
	}
	if g.MaxStart <= 0 || g.MaxDuration <= 0 || g.MaxUrgency <= 0 || g.Branches <= 0 {
		return fmt.Errorf("generator bounds must be positive")
	}
	if g.MaxSeverity <= 1 {
		return fmt.Errorf("generator.max_severity must exceed 1")
	}
	return nil
}
