// Package config handles global configuration for the bibliography processor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/bibproc/config.yml.
// Every field has a working default; the file is optional.
type Config struct {
	// APIKey is the Google Books API key. The GOOGLE_BOOKS_API_KEY
	// environment variable (or a .env file) takes precedence.
	APIKey string `yaml:"api_key,omitempty"`

	// CachePath is the durable lookup-cache file.
	CachePath string `yaml:"cache_path,omitempty"`

	// CacheBackend selects the persistence format: jsonl (default) or sqlite.
	CacheBackend string `yaml:"cache_backend,omitempty"`

	// OutputDir is where processed workbooks are written.
	OutputDir string `yaml:"output_dir,omitempty"`

	// RateLimit is the outbound requests-per-second cap. Zero keeps the
	// client default of one request per 1.2 seconds.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "bibproc"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Cache backend names.
const (
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/bibproc/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the global configuration file. Returns a config with defaults
// applied (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	cfg := &Config{}

	path := Path()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.CachePath == "" {
		c.CachePath = DefaultCachePath()
	}
	if c.CacheBackend == "" {
		c.CacheBackend = BackendJSONL
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}

// ValidateBackend checks that the backend value is supported.
func (c *Config) ValidateBackend() error {
	switch c.CacheBackend {
	case BackendJSONL, BackendSQLite:
		return nil
	}
	return fmt.Errorf("invalid cache_backend: %s (valid: %s, %s)", c.CacheBackend, BackendJSONL, BackendSQLite)
}

// DefaultCachePath returns the lookup-cache location under the user cache
// directory, falling back to the working directory when none is available.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "cache_buscas.jsonl"
	}
	return filepath.Join(dir, ConfigDir, "cache_buscas.jsonl")
}
