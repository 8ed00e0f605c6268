// Package config provides configuration loading and validation for the CLI
// and the API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default limits for the matching surfaces. The catalog cap keeps a
// matching call proportional to tens of opportunities, which is the load
// the engine is designed for.
const (
	DefaultPort         = 8080
	DefaultCatalogLimit = 100
	DefaultTopN         = 20

	maxCatalogLimit = 500
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI
// flags and environment variables.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP server port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	CatalogLimit int `json:"catalog_limit,omitempty"` // Max active opportunities pulled per matching call
	TopN         int `json:"top_n,omitempty"`         // Default number of ranked results returned

	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for JS-rendered postings
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 0..65535")
	}
	if c.CatalogLimit < 0 {
		return fmt.Errorf("config error: 'catalog_limit' must be non-negative")
	}
	if c.CatalogLimit > maxCatalogLimit {
		return fmt.Errorf("config error: 'catalog_limit' must not exceed %d", maxCatalogLimit)
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults, and hard defaults applied last.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.CatalogLimit == 0 {
		result.CatalogLimit = defaults.CatalogLimit
	}
	if result.CatalogLimit == 0 {
		result.CatalogLimit = DefaultCatalogLimit
	}

	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.TopN == 0 {
		result.TopN = DefaultTopN
	}

	// Bool fields: unset and false are indistinguishable, so CLI flags
	// always win for those.

	return result
}
