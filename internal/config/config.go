// Package config defines service configuration and its loading.
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StorageDriver picks the match repository: memory, sqlite or postgres.
	StorageDriver string `koanf:"storage_driver"`

	// StorageDSN is the database path (sqlite) or connection string (postgres).
	StorageDSN string `koanf:"storage_dsn"`

	// QueueSize bounds the async event queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of async workers, one lane each.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize bounds the number of remembered async submissions.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxBatchSize caps the events accepted by one batch request.
	MaxBatchSize int `koanf:"max_batch_size"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Addr:          ":9080",
		StorageDriver: StorageMemory,
		QueueSize:     10_000,
		WorkerCount:   runtime.NumCPU(),
		DedupeSize:    100_000,
		MaxBatchSize:  500,
	}
}

// Validate checks field ranges and cross-field requirements.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty: %w", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q: %w", c.LogFormat, ErrInvalidConfig)
	}
	switch c.StorageDriver {
	case StorageMemory:
	case StorageSQLite, StoragePostgres:
		if c.StorageDSN == "" {
			return fmt.Errorf("storage_dsn is required for %s: %w", c.StorageDriver, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("storage_driver %q: %w", c.StorageDriver, ErrInvalidConfig)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be positive: %w", ErrInvalidConfig)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("worker_count must be positive: %w", ErrInvalidConfig)
	}
	if c.DedupeSize <= 0 {
		return fmt.Errorf("dedupe_size must be positive: %w", ErrInvalidConfig)
	}
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be positive: %w", ErrInvalidConfig)
	}
	return nil
}
