// Package config loads the YAML configuration of a dispatch server.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/extras"
	"github.com/xraph/dispatch/logger"
)

// Config is the root configuration document.
type Config struct {
	Server  ServerConfig         `yaml:"server"`
	Logging logger.LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig        `yaml:"metrics"`
	Tracing TracingConfig        `yaml:"tracing"`
	Limits  LimitsConfig         `yaml:"limits"`
}

// ServerConfig configures the listener and path router.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	Backend         string        `yaml:"backend"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Path      string `yaml:"path"`
}

// TracingConfig configures OTLP trace export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LimitsConfig configures the per-request limits applied to every route.
// Zero disables a limit.
type LimitsConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
	MaxInFlight    int64         `yaml:"max_in_flight"`
	RatePerSecond  float64       `yaml:"rate_per_second"`
	Burst          int           `yaml:"burst"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			Backend:         extras.BackendStd,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: logger.LoggingConfig{
			Level:       "info",
			Format:      "json",
			Environment: "production",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "dispatch",
			Path:      "/metrics",
		},
		Tracing: TracingConfig{
			ServiceName: "dispatch",
			Endpoint:    "localhost:4318",
			SampleRatio: 1,
		},
		Limits: LimitsConfig{
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   4 << 20,
		},
	}
}

// Load reads and parses the file at path. Environment references such as
// ${PORT} are expanded before parsing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.ErrConfigError(fmt.Sprintf("read config file %s", path), err)
	}
	return Parse(data)
}

// Parse decodes data over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.ErrConfigError("failed to parse YAML", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.ErrInvalidConfig("server.addr", fmt.Errorf("must not be empty"))
	}
	if _, err := extras.NewBackend(c.Server.Backend); err != nil {
		return err
	}
	for key, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"limits.request_timeout":  c.Limits.RequestTimeout,
	} {
		if d < 0 {
			return errors.ErrInvalidConfig(key, fmt.Errorf("must not be negative, got %s", d))
		}
	}
	if c.Limits.MaxBodyBytes < 0 {
		return errors.ErrInvalidConfig("limits.max_body_bytes", fmt.Errorf("must not be negative"))
	}
	if c.Limits.MaxInFlight < 0 {
		return errors.ErrInvalidConfig("limits.max_in_flight", fmt.Errorf("must not be negative"))
	}
	if c.Limits.RatePerSecond < 0 {
		return errors.ErrInvalidConfig("limits.rate_per_second", fmt.Errorf("must not be negative"))
	}
	if c.Limits.RatePerSecond > 0 && c.Limits.Burst < 1 {
		return errors.ErrInvalidConfig("limits.burst", fmt.Errorf("must be at least 1 when rate limiting"))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.ErrInvalidConfig("metrics.path", fmt.Errorf("must start with '/', got %q", c.Metrics.Path))
	}
	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			return errors.ErrInvalidConfig("tracing.endpoint", fmt.Errorf("required when tracing is enabled"))
		}
		if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
			return errors.ErrInvalidConfig("tracing.sample_ratio", fmt.Errorf("must be between 0 and 1"))
		}
	}
	return nil
}
