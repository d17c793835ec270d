package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default Lane Runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			Rows:            30,
			Lanes:           3,
			TileWidth:       2.0,
			TileHeight:      0.2,
			RecycleBoundary: 8.0,
			BaseSpeed:       6.0,
			SafeRows:        6,
		},
		Spawn: SpawnConfig{
			HazardLaneChance: 0.33,
			Burst:            0,
		},
		Tiers: []TierConfig{
			{Name: "warmup", At: 0, Gap: 7.0, Hazard: 2.5, Pickup: 20.0},
			{Name: "cruise", At: 30, Gap: 5.0, Hazard: 1.8, Pickup: 16.0},
			{Name: "rush", At: 75, Gap: 3.5, Hazard: 1.2, Pickup: 12.0},
			{Name: "frenzy", At: 150, Gap: 2.5, Hazard: 0.8, Pickup: 10.0},
		},
		Hazards: HazardConfig{
			Jitter:             0.15,
			MeteoriteHeight:    6.0,
			MeteoriteFallSpeed: 4.0,
			DestroyTicks:       30,
			FlickerInterval:    3,
			ToppleStep:         0.05,
		},
		Player: PlayerConfig{
			Width:          0.5,
			Height:         1.6,
			Depth:          0.3,
			Gravity:        -36.0,
			JumpVelocity:   14.0,
			LaneLerp:       0.2,
			FallLimit:      -0.5,
			Health:         3,
			HitFlicker:     2.0,
			FlickerPeriod:  0.2,
			JetPackSeconds: 5.0,
			FlyAltitude:    4.0,
			FlyLerp:        0.05,
		},
		Gun: GunConfig{
			Cooldown: 1.5,
			Speed:    30.0,
			Drop:     3.0,
			Range:    100.0,
			Size:     0.2,
		},
		Chaser: ChaserConfig{
			Offset:    3.0,
			HitStep:   0.5,
			MinOffset: 0.5,
			FollowX:   0.1,
			FollowZ:   0.05,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 240,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
