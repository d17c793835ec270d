// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

// RunnerConfig contains all configuration for the Lane Runner game.
type RunnerConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Tiers      []TierConfig     `yaml:"tiers"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Player     PlayerConfig     `yaml:"player"`
	Gun        GunConfig        `yaml:"gun"`
	Chaser     ChaserConfig     `yaml:"chaser"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrackConfig defines the segment pool and scrolling.
type TrackConfig struct {
	Rows            int     `yaml:"rows"`             // Rows in the ring (visible track length)
	Lanes           int     `yaml:"lanes"`            // Parallel lanes per row
	TileWidth       float64 `yaml:"tile_width"`       // Lane pitch and row depth in world units
	TileHeight      float64 `yaml:"tile_height"`      // Thickness of a walkable tile
	RecycleBoundary float64 `yaml:"recycle_boundary"` // Z past which a row goes to the back
	BaseSpeed       float64 `yaml:"base_speed"`       // Scroll speed in units per second
	SafeRows        int     `yaml:"safe_rows"`        // Leading rows kept empty at start
}

// SpawnConfig tunes how one firing of a spawn process is spread over a row.
type SpawnConfig struct {
	HazardLaneChance float64 `yaml:"hazard_lane_chance"` // Chance each lane of a hazard row gets a hazard
	Burst            int     `yaml:"burst"`              // Segments one firing covers (0 = lane count)
}

// TierConfig is one step of the spawn-rate schedule.
// Intervals are average seconds between firings; 0 disables the process.
type TierConfig struct {
	Name   string  `yaml:"name"`
	At     float64 `yaml:"at"` // Elapsed seconds at which the tier starts
	Gap    float64 `yaml:"gap"`
	Hazard float64 `yaml:"hazard"`
	Pickup float64 `yaml:"pickup"`
}

// HazardConfig defines hazard visuals and animations.
type HazardConfig struct {
	Jitter             float64 `yaml:"jitter"`               // Max relative scale variation
	MeteoriteHeight    float64 `yaml:"meteorite_height"`     // Spawn altitude of meteorites
	MeteoriteFallSpeed float64 `yaml:"meteorite_fall_speed"` // Units per second
	DestroyTicks       int     `yaml:"destroy_ticks"`        // Length of the destruction flicker
	FlickerInterval    int     `yaml:"flicker_interval"`     // Ticks between visibility toggles
	ToppleStep         float64 `yaml:"topple_step"`          // Radians per tick when knocked over
}

// PlayerConfig defines the actor's physics and resources.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Depth          float64 `yaml:"depth"`
	Gravity        float64 `yaml:"gravity"`       // Units per second squared (negative = down)
	JumpVelocity   float64 `yaml:"jump_velocity"` // Units per second
	LaneLerp       float64 `yaml:"lane_lerp"`     // Fraction of the lane offset closed per tick
	FallLimit      float64 `yaml:"fall_limit"`    // Height below which the run ends
	Health         int     `yaml:"health"`
	HitFlicker     float64 `yaml:"hit_flicker"`     // Seconds of invulnerable flicker after a hit
	FlickerPeriod  float64 `yaml:"flicker_period"`  // Seconds between visibility toggles
	JetPackSeconds float64 `yaml:"jetpack_seconds"` // Flight time per pickup
	FlyAltitude    float64 `yaml:"fly_altitude"`
	FlyLerp        float64 `yaml:"fly_lerp"`
}

// GunConfig defines projectile behaviour.
type GunConfig struct {
	Cooldown float64 `yaml:"cooldown"` // Seconds between shots
	Speed    float64 `yaml:"speed"`    // Units per second along -Z
	Drop     float64 `yaml:"drop"`     // Units per second of downward drift
	Range    float64 `yaml:"range"`    // Distance from origin before culling
	Size     float64 `yaml:"size"`
}

// ChaserConfig defines the monster that follows the player.
type ChaserConfig struct {
	Offset    float64 `yaml:"offset"`     // Initial distance behind the player
	HitStep   float64 `yaml:"hit_step"`   // Distance lost per hit
	MinOffset float64 `yaml:"min_offset"` // Closest the chaser gets
	FollowX   float64 `yaml:"follow_x"`   // Lateral lerp per tick
	FollowZ   float64 `yaml:"follow_z"`   // Longitudinal lerp per tick
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "time", "distance" or "none"
	MaxAt float64 `yaml:"max_at"` // Seconds or units at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
	case DifficultyHard:
		cfg.Player.Health = 2
		cfg.Gun.Cooldown *= 1.5
	}
}
