// Package config loads service configuration from the environment.
// A local .env file is applied first (development convenience), then
// the BOOKSTORE_* variables are parsed into the Config struct.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the complete service configuration.
type Config struct {
	Service   ServiceConfig   `envconfig:"SERVICE"`
	Logging   LoggingConfig   `envconfig:"LOGGING"`
	Auth      AuthConfig      `envconfig:"AUTH"`
	Catalog   CatalogConfig   `envconfig:"CATALOG"`
	Tracing   TracingConfig   `envconfig:"TRACING"`
	Profiling ProfilingConfig `envconfig:"PROFILING"`
	Shutdown  ShutdownConfig  `envconfig:"SHUTDOWN"`
}

// ServiceConfig identifies the service and its listen port.
type ServiceConfig struct {
	Name    string `envconfig:"NAME" default:"bookstore-service"`
	Version string `envconfig:"VERSION" default:"dev"`
	Env     string `envconfig:"ENV" default:"local"`
	Port    string `envconfig:"PORT" default:"5000"`
}

// LoggingConfig controls the global zerolog level.
type LoggingConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

// AuthConfig holds token signing and session settings.
// The default secret matches the contract inherited from the original
// deployment; override it in any real environment.
type AuthConfig struct {
	TokenSecret   string        `envconfig:"TOKEN_SECRET" default:"access"`
	TokenTTL      time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	SessionCookie string        `envconfig:"SESSION_COOKIE" default:"bookstore_session"`
}

// CatalogConfig controls the simulated catalog fetch latency.
type CatalogConfig struct {
	FetchDelay time.Duration `envconfig:"FETCH_DELAY" default:"50ms"`
}

// TracingConfig controls OpenTelemetry export.
type TracingConfig struct {
	Enabled    bool    `envconfig:"ENABLED" default:"false"`
	Endpoint   string  `envconfig:"ENDPOINT" default:"localhost:4318"`
	SampleRate float64 `envconfig:"SAMPLE_RATE" default:"1.0"`
}

// ProfilingConfig controls Pyroscope continuous profiling.
type ProfilingConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Endpoint string `envconfig:"ENDPOINT" default:"http://localhost:4040"`
}

// ShutdownConfig controls graceful shutdown behavior.
type ShutdownConfig struct {
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	DrainDelay time.Duration `envconfig:"DRAIN_DELAY" default:"0s"`
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("BOOKSTORE", &cfg); err != nil {
		panic("process environment config: " + err.Error())
	}
	return &cfg
}

// Validate checks invariants that envconfig defaults cannot express.
func (c *Config) Validate() error {
	if c.Service.Port == "" {
		return fmt.Errorf("service port must not be empty")
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("auth token secret must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth token ttl must be positive, got %v", c.Auth.TokenTTL)
	}
	if c.Catalog.FetchDelay < 0 {
		return fmt.Errorf("catalog fetch delay must not be negative, got %v", c.Catalog.FetchDelay)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("tracing sample rate must be in [0,1], got %v", c.Tracing.SampleRate)
	}
	return nil
}

// GetShutdownTimeoutDuration returns the graceful shutdown timeout.
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return c.Shutdown.Timeout
}

// GetReadinessDrainDelayDuration returns how long to keep serving after
// readiness starts failing, so load balancers stop routing before the
// HTTP server shuts down.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return c.Shutdown.DrainDelay
}
