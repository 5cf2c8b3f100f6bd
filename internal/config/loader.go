package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadBreakout loads Brick Breaker configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// load walks the search order for one game. Files in the user and local
// directories that fail to parse or validate are skipped; a bad custom path
// is an error.
func load[T validator](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath, fallback)
		if err != nil {
			return fallback(), err
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath, fallback); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", filename), fallback); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(embedded, fallback)
	if err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readFile[T validator](path string, fallback func() T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data, fallback)
	if err != nil {
		return fallback(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults, so a file only needs the
// keys it overrides.
func parse[T validator](data []byte, fallback func() T) (T, error) {
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
