// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"time"
)

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultDataPath   = "./data/bars.db"
	DefaultAddr       = ":8080"
	DefaultCORSOrigin = "http://localhost:5173"
	DefaultCacheTTL   = 5 * time.Minute
)

// Config holds configuration for the trade review backend.
type Config struct {
	DataPath   string        // Path to the sqlite file holding precomputed bars
	Addr       string        // HTTP listen address
	CORSOrigin string        // Single allowed origin for the charting frontend
	CacheTTL   time.Duration // TTL for cached query results
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset.
func Load() Config {
	cfg := Config{
		DataPath:   DefaultDataPath,
		Addr:       DefaultAddr,
		CORSOrigin: DefaultCORSOrigin,
		CacheTTL:   DefaultCacheTTL,
	}

	if v := os.Getenv("DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}
	if v := os.Getenv("BARS_CACHE_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.CacheTTL = ttl
		}
	}

	return cfg
}
