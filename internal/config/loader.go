package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvasion loads the Alien Invasion configuration for a profile.
// Search order: customPath -> ~/.arcade/configs/invasion_<profile>.yaml ->
// ./configs/invasion_<profile>.yaml -> embedded default.
// Only a broken customPath is an error; other misses fall through.
func LoadInvasion(customPath string, profile Profile) (InvasionConfig, error) {
	if profile != ProfileTerminal {
		profile = ProfileWindow
	}

	if customPath != "" {
		cfg, err := loadFile(customPath, profile)
		if err != nil {
			return cfg, err
		}
		cfg.Validate()
		return cfg, nil
	}

	filename := fmt.Sprintf("invasion_%s.yaml", profile)

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath, profile); err == nil {
			cfg.Validate()
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", filename), profile); err == nil {
		cfg.Validate()
		return cfg, nil
	}

	cfg := DefaultInvasionConfig(profile)
	if err := yaml.Unmarshal(GetDefaultYAML(profile), &cfg); err != nil {
		cfg = DefaultInvasionConfig(profile) // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// loadFile parses a YAML file on top of the profile defaults, so a partial
// file only overrides the keys it names.
func loadFile(path string, profile Profile) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig(profile)

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
