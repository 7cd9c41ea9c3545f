// Package config loads service configuration from YAML files and the
// environment. Environment variables win over file values, file values
// win over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the resolved service configuration.
type Config struct {
	ServiceName string
	Environment string

	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	ProviderBaseURL    string
	ProviderTimeout    time.Duration
	ProviderMaxRetries int

	CacheTTL        time.Duration
	CacheGridSize   float64
	StaleIfErrorTTL time.Duration

	TelemetryEnabled bool
	OTLPEndpoint     string

	ShutdownTimeout time.Duration
}

type fileConfig struct {
	Server struct {
		Port         string `yaml:"port"`
		ReadTimeout  string `yaml:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
		IdleTimeout  string `yaml:"idle_timeout"`
	} `yaml:"server"`

	Provider struct {
		BaseURL    string `yaml:"base_url"`
		Timeout    string `yaml:"timeout"`
		MaxRetries int    `yaml:"max_retries"`
	} `yaml:"provider"`

	Cache struct {
		TTL             string  `yaml:"ttl"`
		GridSize        float64 `yaml:"grid_size"`
		StaleIfErrorTTL string  `yaml:"stale_if_error_ttl"`
	} `yaml:"cache"`

	Telemetry struct {
		Enabled      *bool  `yaml:"enabled"`
		OTLPEndpoint string `yaml:"otlp_endpoint"`
	} `yaml:"telemetry"`

	Shutdown struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"shutdown"`
}

// Load resolves the configuration. A YAML file is read from CONFIG_FILE
// when set, otherwise from config/{APP_ENV}.yaml relative to the working
// directory; a missing file is not an error.
func Load() (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	cfg := &Config{
		ServiceName: "sunwindow-api",
		Environment: env,

		Port:         "8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,

		ProviderBaseURL:    "https://api.open-meteo.com/v1",
		ProviderTimeout:    10 * time.Second,
		ProviderMaxRetries: 3,

		CacheTTL:        30 * time.Minute,
		CacheGridSize:   0.1,
		StaleIfErrorTTL: 3 * time.Hour,

		OTLPEndpoint: "localhost:4317",

		ShutdownTimeout: 30 * time.Second,
	}

	if err := applyFile(cfg, env); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, env string) error {
	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("config: get working directory: %w", err)
		}
		path = filepath.Join(cwd, "config", env+".yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.Server.Port != "" {
		cfg.Port = fc.Server.Port
	}
	cfg.ReadTimeout = parseDuration(fc.Server.ReadTimeout, cfg.ReadTimeout)
	cfg.WriteTimeout = parseDuration(fc.Server.WriteTimeout, cfg.WriteTimeout)
	cfg.IdleTimeout = parseDuration(fc.Server.IdleTimeout, cfg.IdleTimeout)

	if fc.Provider.BaseURL != "" {
		cfg.ProviderBaseURL = fc.Provider.BaseURL
	}
	cfg.ProviderTimeout = parseDuration(fc.Provider.Timeout, cfg.ProviderTimeout)
	if fc.Provider.MaxRetries > 0 {
		cfg.ProviderMaxRetries = fc.Provider.MaxRetries
	}

	cfg.CacheTTL = parseDuration(fc.Cache.TTL, cfg.CacheTTL)
	if fc.Cache.GridSize > 0 {
		cfg.CacheGridSize = fc.Cache.GridSize
	}
	cfg.StaleIfErrorTTL = parseDuration(fc.Cache.StaleIfErrorTTL, cfg.StaleIfErrorTTL)

	if fc.Telemetry.Enabled != nil {
		cfg.TelemetryEnabled = *fc.Telemetry.Enabled
	}
	if fc.Telemetry.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = fc.Telemetry.OTLPEndpoint
	}

	cfg.ShutdownTimeout = parseDuration(fc.Shutdown.Timeout, cfg.ShutdownTimeout)
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("APP_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("UV_PROVIDER_BASE_URL"); v != "" {
		cfg.ProviderBaseURL = v
	}
	if v := os.Getenv("UV_CACHE_TTL"); v != "" {
		cfg.CacheTTL = parseDuration(v, cfg.CacheTTL)
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := os.Getenv("OTEL_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.TelemetryEnabled = enabled
		}
	}
}

func validate(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("config: port must be numeric, got %q", cfg.Port)
	}
	if cfg.ProviderTimeout <= 0 {
		return fmt.Errorf("config: provider timeout must be positive")
	}
	if cfg.CacheGridSize <= 0 || cfg.CacheGridSize > 1 {
		return fmt.Errorf("config: cache grid size must be in (0, 1], got %g", cfg.CacheGridSize)
	}
	return nil
}

// parseDuration parses a duration string, falling back to defaultVal on
// empty input, parse errors, or non-positive results.
func parseDuration(s string, defaultVal time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
