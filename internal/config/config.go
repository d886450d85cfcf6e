package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meltforce/momentum/internal/models"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	API       APIConfig       `yaml:"api"`
	Session   SessionConfig   `yaml:"session"`
	Progress  ProgressConfig  `yaml:"progress"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type SessionConfig struct {
	Dir string `yaml:"dir"`
}

type ProgressConfig struct {
	Strategy     string `yaml:"strategy"`
	DailyDays    int    `yaml:"daily_days"`
	Months       int    `yaml:"months"`
	FanoutLimit  int    `yaml:"fanout_limit"`
	WeekStartsOn string `yaml:"week_starts_on"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Host: "127.0.0.1", Port: 8080},
		API:      APIConfig{BaseURL: "https://muscle-momentum-api.onrender.com/api", Timeout: 30 * time.Second},
		Session:  SessionConfig{Dir: defaultSessionDir()},
		Progress: ProgressConfig{Strategy: "range", DailyDays: 30, Months: 3, FanoutLimit: 8, WeekStartsOn: "monday"},
		Tailscale: TailscaleConfig{
			Hostname: "momentum",
			StateDir: "tsnet-state",
		},
		Log: LogConfig{Level: "info"},
	}
}

func defaultSessionDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "momentum")
	}
	return ".momentum"
}

// Load starts from Default, overlays the YAML file at path (skipped when path
// is empty), then applies environment variable overrides.
// Env vars use the prefix MOMENTUM_ and underscore-separated paths:
//
//	MOMENTUM_SERVER_HOST, MOMENTUM_SERVER_PORT,
//	MOMENTUM_API_BASE_URL, MOMENTUM_API_TIMEOUT,
//	MOMENTUM_SESSION_DIR,
//	MOMENTUM_PROGRESS_STRATEGY, MOMENTUM_PROGRESS_DAILY_DAYS,
//	MOMENTUM_PROGRESS_MONTHS, MOMENTUM_PROGRESS_FANOUT_LIMIT,
//	MOMENTUM_PROGRESS_WEEK_STARTS_ON,
//	MOMENTUM_TAILSCALE_ENABLED, MOMENTUM_TAILSCALE_HOSTNAME,
//	MOMENTUM_TAILSCALE_STATE_DIR, MOMENTUM_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOMENTUM_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	envInt("MOMENTUM_SERVER_PORT", &cfg.Server.Port)
	if v := os.Getenv("MOMENTUM_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("MOMENTUM_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = d
		}
	}
	if v := os.Getenv("MOMENTUM_SESSION_DIR"); v != "" {
		cfg.Session.Dir = v
	}
	if v := os.Getenv("MOMENTUM_PROGRESS_STRATEGY"); v != "" {
		cfg.Progress.Strategy = v
	}
	envInt("MOMENTUM_PROGRESS_DAILY_DAYS", &cfg.Progress.DailyDays)
	envInt("MOMENTUM_PROGRESS_MONTHS", &cfg.Progress.Months)
	envInt("MOMENTUM_PROGRESS_FANOUT_LIMIT", &cfg.Progress.FanoutLimit)
	if v := os.Getenv("MOMENTUM_PROGRESS_WEEK_STARTS_ON"); v != "" {
		cfg.Progress.WeekStartsOn = v
	}
	if v := os.Getenv("MOMENTUM_TAILSCALE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = b
		}
	}
	if v := os.Getenv("MOMENTUM_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("MOMENTUM_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("MOMENTUM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.Session.Dir == "" {
		return fmt.Errorf("session.dir is required")
	}
	switch c.Progress.Strategy {
	case "range", "per-day":
	default:
		return fmt.Errorf("progress.strategy must be \"range\" or \"per-day\"")
	}
	if c.Progress.DailyDays < 1 {
		return fmt.Errorf("progress.daily_days must be at least 1")
	}
	if c.Progress.Months < 1 {
		return fmt.Errorf("progress.months must be at least 1")
	}
	if c.Progress.FanoutLimit < 1 {
		return fmt.Errorf("progress.fanout_limit must be at least 1")
	}
	if _, err := c.Progress.Weekday(); err != nil {
		return err
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Weekday parses progress.week_starts_on ("monday", "Sunday", ...).
func (p ProgressConfig) Weekday() (time.Weekday, error) {
	d, err := models.ParseDayOfWeek(p.WeekStartsOn)
	if err != nil {
		return 0, fmt.Errorf("progress.week_starts_on: %w", err)
	}
	return d.Weekday(), nil
}

// SlogLevel maps log.level to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: want debug, info, warn or error", l.Level)
	}
	return lvl, nil
}
