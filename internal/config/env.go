package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables consulted by New.
const (
	EnvHome        = "POKEDEX_HOME"
	EnvBaseURL     = "POKEDEX_BASE_URL"
	EnvLimit       = "POKEDEX_LIMIT"
	EnvTimeout     = "POKEDEX_TIMEOUT"
	EnvConcurrency = "POKEDEX_CONCURRENCY"
	EnvRateLimit   = "POKEDEX_RATE_LIMIT"
	EnvLogLevel    = "POKEDEX_LOG_LEVEL"
	EnvLogFormat   = "POKEDEX_LOG_FORMAT"
	EnvLogFile     = "POKEDEX_LOG_FILE"
	EnvOutput      = "POKEDEX_OUTPUT"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Variables that are already set win.
// Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// applyEnvOverrides copies POKEDEX_* variables over file values.
// Unparseable numeric values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.API.Limit = n
		}
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.API.Timeout = d
		}
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.API.Concurrency = n
		}
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.API.RateLimit = f
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = v
	}
}
