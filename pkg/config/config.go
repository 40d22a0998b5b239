// Package config loads and validates the orchestrator configuration from
// foreman.yaml plus environment variables. File values override built-in
// defaults; secrets come from the environment only.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the complete orchestrator configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Budget    BudgetConfig    `yaml:"budget"`
	Pool      PoolConfig      `yaml:"pool"`
	Queue     QueueConfig     `yaml:"queue"`
	Review    ReviewConfig    `yaml:"review"`
	Assessor  AssessorConfig  `yaml:"assessor"`
	Runtime   RuntimeConfig   `yaml:"runtime"`
	LLM       LLMConfig       `yaml:"llm"`
	Masking   MaskingConfig   `yaml:"masking"`
	Retention RetentionConfig `yaml:"retention"`
	Slack     SlackConfig     `yaml:"slack"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	ListenAddr        string   `yaml:"listen_addr"`
	APIKey            string   `yaml:"api_key"`
	CORSOrigins       []string `yaml:"cors_origins"`
	RateLimitWindowMS int      `yaml:"rate_limit_window_ms"`
	RateLimitMax      int      `yaml:"rate_limit_max"`
}

// DatabaseConfig holds Postgres connection settings. The URL normally comes
// from the DATABASE_URL environment variable.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// BudgetConfig holds the daily spending guard settings.
type BudgetConfig struct {
	DailyBudgetCents int64   `yaml:"daily_budget_cents"`
	WarningThreshold float64 `yaml:"budget_warning_threshold"`
	Enabled          bool    `yaml:"enabled"`
}

// PoolConfig sizes the resource pool classes.
type PoolConfig struct {
	LocalSlots   int `yaml:"local_slots"`
	PremiumSlots int `yaml:"premium_slots"`
}

// QueueConfig holds assigner, executor, and sweeper settings.
type QueueConfig struct {
	TaskTimeoutMS        int `yaml:"task_timeout_ms"`
	SweeperIntervalMS    int `yaml:"sweeper_interval_ms"`
	PollIntervalMS       int `yaml:"poll_interval_ms"`
	DefaultMaxIterations int `yaml:"default_max_iterations"`
}

// ReviewConfig controls the automatic code-review trigger.
type ReviewConfig struct {
	Enabled       bool    `yaml:"enable_reviews"`
	MinComplexity float64 `yaml:"review_min_complexity"`
	Model         string  `yaml:"model"`
}

// AssessorConfig controls the optional judge pass of complexity scoring.
type AssessorConfig struct {
	EnableJudge bool   `yaml:"enable_judge_assessor"`
	JudgeModel  string `yaml:"judge_model"`
}

// RuntimeConfig points at the external agent runtime.
type RuntimeConfig struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// LLMConfig points at the LLM sidecar used by judge and reviewer.
type LLMConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
}

// MaskingPattern is an operator-supplied regex masker.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description"`
}

// MaskingConfig controls credential scrubbing of tool output.
type MaskingConfig struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroup   string           `yaml:"pattern_group"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns"`
}

// RetentionConfig controls how long terminal tasks and persisted events are
// kept before the cleanup service removes them.
type RetentionConfig struct {
	Enabled           bool `yaml:"enabled"`
	TaskRetentionDays int  `yaml:"task_retention_days"`
	EventTTLMS        int  `yaml:"event_ttl_ms"`
	CleanupIntervalMS int  `yaml:"cleanup_interval_ms"`
}

// SlackConfig enables operator escalation notices. Disabled when token or
// channel is empty.
type SlackConfig struct {
	Token        string `yaml:"token"`
	Channel      string `yaml:"channel"`
	DashboardURL string `yaml:"dashboard_url"`
}

// Duration accessors. Millisecond fields keep the YAML flat; callers want
// time.Duration.

func (q QueueConfig) TaskTimeout() time.Duration {
	return time.Duration(q.TaskTimeoutMS) * time.Millisecond
}

func (q QueueConfig) SweeperInterval() time.Duration {
	return time.Duration(q.SweeperIntervalMS) * time.Millisecond
}

func (q QueueConfig) PollInterval() time.Duration {
	return time.Duration(q.PollIntervalMS) * time.Millisecond
}

func (s ServerConfig) RateLimitWindow() time.Duration {
	return time.Duration(s.RateLimitWindowMS) * time.Millisecond
}

func (r RuntimeConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutMS) * time.Millisecond
}

func (r RetentionConfig) EventTTL() time.Duration {
	return time.Duration(r.EventTTLMS) * time.Millisecond
}

func (r RetentionConfig) CleanupInterval() time.Duration {
	return time.Duration(r.CleanupIntervalMS) * time.Millisecond
}

// Initialize loads, merges, and validates configuration.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Read the YAML file if present, expanding {{.ENV_VAR}} templates
//  3. Merge file values over defaults
//  4. Apply environment overrides for secrets
//  5. Validate
func Initialize(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			slog.Info("No configuration file, using defaults", "path", path)
		case err != nil:
			return nil, NewLoadError(path, err)
		default:
			var fileCfg Config
			if err := yaml.Unmarshal(ExpandEnv(data), &fileCfg); err != nil {
				return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
			}
			if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
				return nil, NewLoadError(path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	slog.Info("Configuration initialized",
		"listen_addr", cfg.Server.ListenAddr,
		"daily_budget_cents", cfg.Budget.DailyBudgetCents,
		"local_slots", cfg.Pool.LocalSlots,
		"premium_slots", cfg.Pool.PremiumSlots,
		"reviews_enabled", cfg.Review.Enabled,
		"judge_enabled", cfg.Assessor.EnableJudge)
	return cfg, nil
}

// applyEnvOverrides pulls secrets and deploy-specific values from the
// environment. Env always wins over the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOREMAN_API_KEY"); v != "" {
		cfg.Server.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("FOREMAN_RUNTIME_URL"); v != "" {
		cfg.Runtime.BaseURL = v
	}
	if v := os.Getenv("FOREMAN_LLM_ADDR"); v != "" {
		cfg.LLM.GRPCAddr = v
	}
	if v := os.Getenv("SLACK_BOT_TOKEN"); v != "" {
		cfg.Slack.Token = v
	}
	if v := os.Getenv("SLACK_CHANNEL_ID"); v != "" {
		cfg.Slack.Channel = v
	}
}

func validate(cfg *Config) error {
	if cfg.Server.APIKey == "" {
		return &ValidationError{Section: "server", Field: "api_key", Err: ErrMissingRequiredField}
	}
	if cfg.Database.URL == "" {
		return &ValidationError{Section: "database", Field: "url", Err: ErrMissingRequiredField}
	}
	if cfg.Budget.WarningThreshold < 0 || cfg.Budget.WarningThreshold >= 1 {
		return &ValidationError{Section: "budget", Field: "budget_warning_threshold", Err: ErrInvalidValue}
	}
	if cfg.Pool.LocalSlots < 1 || cfg.Pool.PremiumSlots < 1 {
		return &ValidationError{Section: "pool", Field: "slots", Err: ErrInvalidValue}
	}
	if cfg.Queue.DefaultMaxIterations < 1 {
		return &ValidationError{Section: "queue", Field: "default_max_iterations", Err: ErrInvalidValue}
	}
	if cfg.Queue.TaskTimeoutMS <= 0 || cfg.Queue.SweeperIntervalMS <= 0 {
		return &ValidationError{Section: "queue", Field: "timeouts", Err: ErrInvalidValue}
	}
	if cfg.Review.Enabled && cfg.Review.MinComplexity < 0 {
		return &ValidationError{Section: "review", Field: "review_min_complexity", Err: ErrInvalidValue}
	}
	if cfg.Runtime.BaseURL == "" {
		return &ValidationError{Section: "runtime", Field: "base_url", Err: ErrMissingRequiredField}
	}
	if cfg.Retention.Enabled {
		if cfg.Retention.TaskRetentionDays < 1 {
			return &ValidationError{Section: "retention", Field: "task_retention_days", Err: ErrInvalidValue}
		}
		if cfg.Retention.EventTTLMS <= 0 || cfg.Retention.CleanupIntervalMS <= 0 {
			return &ValidationError{Section: "retention", Field: "intervals", Err: ErrInvalidValue}
		}
	}
	return nil
}
