// Package config provides configuration management for tabby Series
// rendering and serialization.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for Series rendering and IO
type Config struct {
	// Rendering Configuration
	MaxPreviewRows int    `json:"max_preview_rows" yaml:"max_preview_rows"` // Maximum rows shown by String/Show
	MaxValueWidth  int    `json:"max_value_width" yaml:"max_value_width"`   // Value text truncation width
	NAToken        string `json:"na_token" yaml:"na_token"`                 // Token rendered for missing values

	// IO Configuration
	ColumnName string `json:"column_name" yaml:"column_name"` // Default column name for CSV/JSON output
	PrettyJSON bool   `json:"pretty_json" yaml:"pretty_json"` // Indent JSON output with tabs
}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Default configuration values
const (
	DefaultMaxPreviewRows = 25
	DefaultMaxValueWidth  = 42
	DefaultNAToken        = "N/A"
	DefaultColumnName     = "series"
)

// Initialize global configuration with defaults
func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		MaxPreviewRows: DefaultMaxPreviewRows,
		MaxValueWidth:  DefaultMaxValueWidth,
		NAToken:        DefaultNAToken,
		ColumnName:     DefaultColumnName,
		PrettyJSON:     true,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.MaxPreviewRows <= 0 {
		return fmt.Errorf("MaxPreviewRows must be positive, got %d", c.MaxPreviewRows)
	}
	if c.MaxValueWidth <= 0 {
		return fmt.Errorf("MaxValueWidth must be positive, got %d", c.MaxValueWidth)
	}
	if c.ColumnName == "" {
		return fmt.Errorf("ColumnName must not be empty")
	}
	return nil
}

// GetGlobalConfig returns a copy of the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the global configuration after validating it
func SetGlobalConfig(c Config) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = c
	return nil
}

// ResetGlobalConfig restores the default global configuration
func ResetGlobalConfig() {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = NewConfig()
}

// LoadFromFile loads configuration from a YAML or JSON file based on its
// extension
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	c := NewConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", filepath.Ext(path))
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return c, nil
}

// LoadFromEnv loads configuration overrides from TABBY_* environment
// variables on top of the defaults
func LoadFromEnv() Config {
	c := NewConfig()

	if v := os.Getenv("TABBY_MAX_PREVIEW_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxPreviewRows = n
		}
	}
	if v := os.Getenv("TABBY_MAX_VALUE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxValueWidth = n
		}
	}
	if v := os.Getenv("TABBY_NA_TOKEN"); v != "" {
		c.NAToken = v
	}
	if v := os.Getenv("TABBY_COLUMN_NAME"); v != "" {
		c.ColumnName = v
	}
	if v := os.Getenv("TABBY_PRETTY_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.PrettyJSON = b
		}
	}

	return c
}
