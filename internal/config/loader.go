package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defenseFile = "defense.yaml"

// LoadDefense loads the simulation configuration.
// Search order: customPath -> ~/.planetdefense/configs/defense.yaml -> ./configs/defense.yaml -> embedded default
//
// Files are unmarshalled over DefaultDefenseConfig, so a partial file only
// overrides the keys it names.
func LoadDefense(customPath string) (DefenseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefenseConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseDefense(data)
		if err != nil {
			return DefenseConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(defenseFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDefense(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", defenseFile)); err == nil {
		if cfg, err := ParseDefense(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseDefense(defaultDefenseYAML)
	if err != nil {
		return DefaultDefenseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseDefense decodes YAML over the built-in defaults and validates the
// result.
func ParseDefense(data []byte) (DefenseConfig, error) {
	cfg := DefaultDefenseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefenseConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DefenseConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MarshalDefense encodes a configuration as YAML.
func MarshalDefense(cfg DefenseConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planetdefense", "configs", filename)
}
