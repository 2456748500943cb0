package registry

import (
	"os"
	"strconv"
	"time"

	"github.com/boppreh/workspace/internal/domain"
)

// Config holds all configuration for the registry client.
type Config struct {
	Endpoints  map[domain.PackageManager]string
	TimeoutMs  int
	MaxRetries int
	CacheSize  int
	CacheTTL   time.Duration
}

// DefaultConfig returns a Config pointing at the public registries.
func DefaultConfig() Config {
	return Config{
		Endpoints: map[domain.PackageManager]string{
			domain.ManagerGo:    "https://proxy.golang.org",
			domain.ManagerNpm:   "https://registry.npmjs.org",
			domain.ManagerPyPI:  "https://pypi.org",
			domain.ManagerCargo: "https://crates.io",
		},
		TimeoutMs:  5000,
		MaxRetries: 1,
		CacheSize:  512,
		CacheTTL:   15 * time.Minute,
	}
}

// LoadConfig reads registry configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	applyEndpointEnv(&cfg, domain.ManagerGo, "WORKSPACE_REGISTRY_GO")
	applyEndpointEnv(&cfg, domain.ManagerNpm, "WORKSPACE_REGISTRY_NPM")
	applyEndpointEnv(&cfg, domain.ManagerPyPI, "WORKSPACE_REGISTRY_PYPI")
	applyEndpointEnv(&cfg, domain.ManagerCargo, "WORKSPACE_REGISTRY_CARGO")

	if v := os.Getenv("WORKSPACE_REGISTRY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WORKSPACE_REGISTRY_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	return cfg
}

func applyEndpointEnv(cfg *Config, manager domain.PackageManager, envName string) {
	if v := os.Getenv(envName); v != "" {
		cfg.Endpoints[manager] = v
	}
}
