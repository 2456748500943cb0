package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all workspace-wide settings. Values come from
// ~/.workspace/config.yaml when present; WORKSPACE_* environment variables
// override the file.
type Config struct {
	Root       string         `yaml:"root"`
	Jobs       int            `yaml:"jobs"`
	DBPath     string         `yaml:"db_path"`
	Registries RegistryConfig `yaml:"registries"`
}

// RegistryConfig toggles freshness lookups per package manager and carries
// optional tuning for the registry client. TimeoutMs bounds each lookup;
// CacheTTL is how long a resolved version stays cached, written as a Go
// duration string such as "15m". Zero values defer to the client defaults.
type RegistryConfig struct {
	Go        bool   `yaml:"go"`
	Npm       bool   `yaml:"npm"`
	PyPI      bool   `yaml:"pypi"`
	Cargo     bool   `yaml:"cargo"`
	TimeoutMs int    `yaml:"timeout_ms,omitempty"`
	CacheTTL  string `yaml:"cache_ttl,omitempty"`
}

// CacheTTLDuration parses the CacheTTL field. The second return is false
// when the field is unset or not a positive duration.
func (r RegistryConfig) CacheTTLDuration() (time.Duration, bool) {
	if r.CacheTTL == "" {
		return 0, false
	}
	ttl, err := time.ParseDuration(r.CacheTTL)
	if err != nil || ttl <= 0 {
		return 0, false
	}
	return ttl, true
}

// Enabled reports whether lookups for the given manager are switched on.
func (r RegistryConfig) Enabled(manager string) bool {
	switch manager {
	case "go":
		return r.Go
	case "npm":
		return r.Npm
	case "pypi":
		return r.PyPI
	case "cargo":
		return r.Cargo
	default:
		return false
	}
}

// DefaultConfig returns a Config with sensible defaults. The workspace root
// defaults to ~/projects; all registries are enabled.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Root:   filepath.Join(home, "projects"),
		Jobs:   4,
		DBPath: filepath.Join(home, ".workspace", "workspace.db"),
		Registries: RegistryConfig{
			Go:    true,
			Npm:   true,
			PyPI:  true,
			Cargo: true,
		},
	}
}

// Path returns the location of the YAML config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".workspace", "config.yaml"), nil
}

// Load reads configuration from the YAML file (if present) and then applies
// environment variable overrides. A .env file in the working directory is
// loaded first for development setups; its absence is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path, err := Path()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the config as YAML, creating ~/.workspace if needed.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WORKSPACE_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("WORKSPACE_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Jobs = n
		}
	}
	if v := os.Getenv("WORKSPACE_DB"); v != "" {
		cfg.DBPath = v
	}
}
