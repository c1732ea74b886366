// Package config loads diff-analyzer configuration from a YAML file with
// environment variable overrides. A missing config file is not an error;
// defaults plus environment cover the common deployment case.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	defaultServiceName    = "diff-analyzer"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 5000
	defaultConcurrency    = 10
	defaultMaxBatchSize   = 100
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 60 * time.Second
	defaultIdleTimeout    = 120 * time.Second
	defaultLogLevel       = "info"
	defaultRateLimitRPS   = 100
)

// Config holds all configuration for the diff-analyzer service.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Port         int           `yaml:"port"          env:"ANALYZER_PORT"`
	Debug        bool          `yaml:"debug"         env:"APP_DEBUG"`
	Concurrency  int           `yaml:"concurrency"   env:"ANALYZER_CONCURRENCY"`
	MaxBatchSize int           `yaml:"max_batch_size"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// RateLimitConfig holds request rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled"`
	RPS     int  `yaml:"rps"   env:"ANALYZER_RATE_LIMIT_RPS"`
	Burst   int  `yaml:"burst"`
}

// Load reads the YAML config file at path (skipped when it does not exist),
// then applies .env files and environment variable overrides.
func Load(path string) (*Config, error) {
	// .env files are optional; only real load failures matter
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env-only configuration
		case err != nil:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Service.Port)
	}
	if c.Service.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Service.Concurrency)
	}
	if c.Service.MaxBatchSize <= 0 {
		return fmt.Errorf("max batch size must be positive, got %d", c.Service.MaxBatchSize)
	}
	if c.RateLimit.Enabled && c.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got %d", c.RateLimit.RPS)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:         defaultServiceName,
			Version:      defaultServiceVersion,
			Port:         defaultServicePort,
			Concurrency:  defaultConcurrency,
			MaxBatchSize: defaultMaxBatchSize,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			RPS:     defaultRateLimitRPS,
			Burst:   defaultRateLimitRPS,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ANALYZER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Service.Port = port
		}
	}
	if v := os.Getenv("APP_DEBUG"); v != "" {
		cfg.Service.Debug = v == "true"
	}
	if v := os.Getenv("ANALYZER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Service.Concurrency = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ANALYZER_RATE_LIMIT_RPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.RPS = n
		}
	}
}
