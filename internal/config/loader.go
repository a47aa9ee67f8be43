package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "platformer.yaml"

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default -> hardcoded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an error;
// broken files further down the search order are skipped.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, decodes and validates a single config file.
func LoadFile(path string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath returns the file LoadPlatformer would read, or "" when it
// would fall back to the embedded default.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(configFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
