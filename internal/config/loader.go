package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Validation errors returned by RunnerConfig.Validate.
var (
	ErrNoTiers       = errors.New("config: at least one tier is required")
	ErrTierOrder     = errors.New("config: tiers must be sorted by start time")
	ErrTierInterval  = errors.New("config: tier intervals must not be negative")
	ErrTrackGeometry = errors.New("config: track needs rows >= 2, lanes >= 1, a positive tile width and a non-negative recycle boundary")
)

// LoadRunner loads Lane Runner configuration.
// Search order: customPath -> ~/.lanerunner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		if parsed, ok := tryLoad(path); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (RunnerConfig, bool) {
	var cfg RunnerConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanerunner", "configs", filename)
}

// Validate checks the invariants the track engine relies on.
func (c RunnerConfig) Validate() error {
	if c.Track.Rows < 2 || c.Track.Lanes < 1 || c.Track.TileWidth <= 0 || c.Track.RecycleBoundary < 0 {
		return ErrTrackGeometry
	}
	if len(c.Tiers) == 0 {
		return ErrNoTiers
	}
	if !lo.IsSortedByKey(c.Tiers, func(t TierConfig) float64 { return t.At }) {
		return ErrTierOrder
	}
	if lo.SomeBy(c.Tiers, func(t TierConfig) bool { return t.Gap < 0 || t.Hazard < 0 || t.Pickup < 0 }) {
		return ErrTierInterval
	}
	return nil
}
