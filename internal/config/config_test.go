package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if diff := cmp.Diff(DefaultRunnerConfig(), cfg); diff != "" {
		t.Errorf("embedded YAML differs from DefaultRunnerConfig (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")

	cfg := DefaultRunnerConfig()
	cfg.Track.Rows = 20
	cfg.Tiers = []TierConfig{{Name: "only", At: 0, Gap: 1, Hazard: 2, Pickup: 3}}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	loaded, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tiers: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	unsorted := DefaultRunnerConfig()
	unsorted.Tiers[0].At = 500
	data, _ := yaml.Marshal(unsorted)
	path := filepath.Join(dir, "unsorted.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); !errors.Is(err, ErrTierOrder) {
		t.Errorf("unsorted tiers error = %v, expected ErrTierOrder", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   error
	}{
		{"valid", func(*RunnerConfig) {}, nil},
		{"no tiers", func(c *RunnerConfig) { c.Tiers = nil }, ErrNoTiers},
		{"negative interval", func(c *RunnerConfig) { c.Tiers[1].Hazard = -1 }, ErrTierInterval},
		{"single row", func(c *RunnerConfig) { c.Track.Rows = 1 }, ErrTrackGeometry},
		{"zero lanes", func(c *RunnerConfig) { c.Track.Lanes = 0 }, ErrTrackGeometry},
		{"zero tile width", func(c *RunnerConfig) { c.Track.TileWidth = 0 }, ErrTrackGeometry},
		{"negative recycle boundary", func(c *RunnerConfig) { c.Track.RecycleBoundary = -1 }, ErrTrackGeometry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%f", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Player.Health != 2 {
		t.Errorf("hard preset health = %d, expected 2", cfg.Player.Health)
	}

	cfg = DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultRunnerConfig()
	ApplyPreset(&cfg, ParsePreset("bogus"))
	if diff := cmp.Diff(DefaultRunnerConfig(), cfg); diff != "" {
		t.Errorf("unknown preset should not change config:\n%s", diff)
	}
}

func TestDifficultySpeed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	})

	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 6},
		{50, 9},
		{100, 12},
		{1000, 12}, // clamped at max difficulty
	}
	for _, tc := range tests {
		if got := dm.Speed(6, tc.elapsed, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Speed(6, %f) = %f, expected %f", tc.elapsed, got, tc.want)
		}
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.5, Scaling: ScalingConfig{SpeedMultiplier: 1}})
	if fixed.IsEnabled() {
		t.Error("disabled manager should report IsEnabled() = false")
	}
	if got := fixed.Speed(6, 1000, 0); got != 9 {
		t.Errorf("fixed Speed = %f, expected 9", got)
	}
}
