package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treefs/treefs/internal/util"
)

// Config contains runtime configuration values for the namespace engine.
type Config struct {
	MaxNodes      int           // Maximum children per directory (Default 1024)
	MaxNameLength int           // Maximum node name length in bytes (Default 255)
	MaxDepth      int           // Maximum tree depth, root counted as depth 1 (Default 255)
	LogLvl        util.LogLevel // Log verbosity (Default info)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions.
type ConfigOverride struct {
	MaxNodes      *int `yaml:"max_nodes,omitempty" json:"max_nodes,omitempty"`
	MaxNameLength *int `yaml:"max_name_length,omitempty" json:"max_name_length,omitempty"`
	MaxDepth      *int `yaml:"max_depth,omitempty" json:"max_depth,omitempty"`
	LogLevel      *int `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		MaxNodes:      MAX_NODES,
		MaxNameLength: MAX_NAME_LENGTH,
		MaxDepth:      MAX_DEPTH,
		LogLvl:        util.InfoLevel,
	}
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.MaxNodes != nil {
		c.MaxNodes = *override.MaxNodes
	}
	if override.MaxNameLength != nil {
		c.MaxNameLength = *override.MaxNameLength
	}
	if override.MaxDepth != nil {
		c.MaxDepth = *override.MaxDepth
	}
	if override.LogLevel != nil {
		c.LogLvl = util.LogLevel(*override.LogLevel)
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults. This is a convenience function that combines NewDefaultConfig,
// LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
