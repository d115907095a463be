package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHanoi loads the Hanoi configuration.
// Search order: customPath -> ~/.hanoi/configs/hanoi.yaml -> ./configs/hanoi.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadHanoi(customPath string) (HanoiConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HanoiConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseHanoi(data)
		if err != nil {
			return HanoiConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hanoi.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseHanoi(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hanoi.yaml")); err == nil {
		if cfg, err := parseHanoi(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseHanoi(defaultHanoiYAML)
	if err != nil {
		return DefaultHanoiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseHanoi(data []byte) (HanoiConfig, error) {
	cfg := DefaultHanoiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HanoiConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HanoiConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hanoi", "configs", filename)
}
