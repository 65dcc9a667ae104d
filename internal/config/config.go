// Package config loads pokedex settings from defaults, ~/.pokedex/config.yaml,
// .env files and POKEDEX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the api section.
const (
	DefaultBaseURL     = "https://pokeapi.co/api/v2"
	DefaultLimit       = 151
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 0
)

// Output formats understood by the list and show commands.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

const configFileName = "config.yaml"

// Config is the full pokedex configuration as stored in config.yaml.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// path is the file the config was loaded from (or will be saved to).
	path string
}

// APIConfig controls how the Pokémon API is reached.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Limit   int           `yaml:"limit"`
	Timeout time.Duration `yaml:"timeout"`
	// Concurrency bounds in-flight detail requests; 0 means one per entry.
	Concurrency int `yaml:"concurrency"`
	// RateLimit is requests per second; 0 disables limiting.
	RateLimit float64 `yaml:"rate_limit"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     DefaultBaseURL,
			Limit:       DefaultLimit,
			Timeout:     DefaultTimeout,
			Concurrency: DefaultConcurrency,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the effective configuration: defaults, then the config file
// in the config directory (if present), then environment overrides.
// A malformed config file is reported on stderr and ignored.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.path = filepath.Join(dir, configFileName)
		if loadErr := cfg.Load(); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: ignoring config file %s: %v\n", cfg.path, loadErr)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// LoadFile returns defaults overlaid with the file at path, ignoring the
// environment. A missing file yields plain defaults bound to path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path
	if err := cfg.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the config.yaml location inside GetConfigDir.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Path returns the file backing this config.
func (c *Config) Path() string {
	return c.path
}

// Load reads the backing file over the current values.
func (c *Config) Load() error {
	if c.path == "" {
		return errors.New("config has no file path")
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.path, err)
	}
	return nil
}

// Save writes the config to its backing file, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := DefaultPath()
		if err != nil {
			return err
		}
		c.path = path
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.path, err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url must not be empty"))
	}
	if c.API.Limit < 1 {
		errs = append(errs, fmt.Errorf("api.limit must be >= 1, got %d", c.API.Limit))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be >= 0, got %s", c.API.Timeout))
	}
	if c.API.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("api.concurrency must be >= 0, got %d", c.API.Concurrency))
	}
	if c.API.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("api.rate_limit must be >= 0, got %g", c.API.RateLimit))
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q is not one of table, json, ndjson",
			c.Output.DefaultFormat))
	}
	return errors.Join(errs...)
}

// IsValidOutputFormat reports whether format is a supported output format.
func IsValidOutputFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatNDJSON:
		return true
	default:
		return false
	}
}
