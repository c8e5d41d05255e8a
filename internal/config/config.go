// Package config provides configuration management for the employee API server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default configuration values.
const (
	DefaultServerPort       = 8080
	DefaultLogLevel         = "info"
	DefaultShutdownTimeout  = 30 * time.Second
	DefaultMetricsEnabled   = true
	DefaultEventsEnabled    = true
	DefaultStrictValidation = false
	DefaultSeedEnabled      = true
	DefaultCORSOrigins      = "*"
	DefaultEnvFile          = ".env"
)

// Environment variable names.
const (
	EnvServerPort       = "APP_SERVER_PORT"
	EnvLogLevel         = "APP_LOG_LEVEL"
	EnvShutdownTimeout  = "APP_SHUTDOWN_TIMEOUT"
	EnvMetricsEnabled   = "APP_METRICS_ENABLED"
	EnvEventsEnabled    = "APP_EVENTS_ENABLED"
	EnvStrictValidation = "APP_STRICT_VALIDATION"
	EnvSeedEnabled      = "APP_SEED_ENABLED"
	EnvCORSOrigins      = "APP_CORS_ALLOWED_ORIGINS"
	EnvEnvFile          = "APP_ENV_FILE"
)

// Config holds the application configuration.
type Config struct {
	// Server settings.
	ServerPort      int
	LogLevel        string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool

	// EventsEnabled exposes the employee change feed over WebSocket.
	EventsEnabled bool

	// StrictValidation rejects employees with empty names or malformed emails.
	StrictValidation bool

	// SeedEnabled starts the store with the two sample employees.
	SeedEnabled bool

	// CORSAllowedOrigins lists allowed origins; "*" allows any.
	CORSAllowedOrigins []string
}

// Validation errors.
var (
	ErrInvalidServerPort      = errors.New("server port must be between 1 and 65535")
	ErrInvalidLogLevel        = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidShutdownTimeout = errors.New("shutdown timeout must be positive")
	ErrNoCORSOrigins          = errors.New("at least one CORS origin must be configured")
)

// Load reads configuration from an optional env file and the environment.
// Variables already present in the environment win over the file,
// and both win over defaults. A missing env file is not an error.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg := &Config{
		ServerPort:         DefaultServerPort,
		LogLevel:           DefaultLogLevel,
		ShutdownTimeout:    DefaultShutdownTimeout,
		MetricsEnabled:     DefaultMetricsEnabled,
		EventsEnabled:      DefaultEventsEnabled,
		StrictValidation:   DefaultStrictValidation,
		SeedEnabled:        DefaultSeedEnabled,
		CORSAllowedOrigins: splitList(DefaultCORSOrigins),
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadEnvFile loads the file named by APP_ENV_FILE, or .env, into the process environment.
func loadEnvFile() error {
	path := os.Getenv(EnvEnvFile)
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// loadFromEnv loads configuration values from environment variables.
func (c *Config) loadFromEnv() error {
	if val := os.Getenv(EnvServerPort); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvServerPort, err)
		}
		c.ServerPort = port
	}

	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv(EnvShutdownTimeout); val != "" {
		timeout, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvShutdownTimeout, err)
		}
		c.ShutdownTimeout = timeout
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{EnvMetricsEnabled, &c.MetricsEnabled},
		{EnvEventsEnabled, &c.EventsEnabled},
		{EnvStrictValidation, &c.StrictValidation},
		{EnvSeedEnabled, &c.SeedEnabled},
	}
	for _, b := range bools {
		if err := parseBoolEnv(b.name, b.dst); err != nil {
			return err
		}
	}

	if val := os.Getenv(EnvCORSOrigins); val != "" {
		c.CORSAllowedOrigins = splitList(val)
	}

	return nil
}

// parseBoolEnv sets dst from the named variable when it is present.
func parseBoolEnv(name string, dst *bool) error {
	val := os.Getenv(name)
	if val == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	*dst = parsed

	return nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return ErrInvalidServerPort
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	if len(c.CORSAllowedOrigins) == 0 {
		return ErrNoCORSOrigins
	}

	return nil
}

// Address returns the server address in host:port format.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
