// Package runner implements Lane Runner, a pseudo-3D endless runner.
// The player dodges, jumps and shoots through a procedurally generated
// track of parallel lanes while a monster closes in after every hit.
package runner

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/scene"
	"github.com/vovakirdan/lane-runner/internal/track"
)

// Game implements the Lane Runner game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	clock      SessionClock
	scene      *scene.Scene
	camera     scene.Camera
	track      *track.Track
	scheduler  *track.Scheduler
	player     *Player
	gun        *Gun
	chaser     *Chaser
	speed      float64
	stats      core.RunStats
	topTier    int
	cause      string // Why the run ended
	gameOver   bool
	paused     bool
	err        error // Setup failure shown instead of the game
}

// GameID is the registry and leaderboard id of the runner.
const GameID = "runner"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game and track logs to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a new Lane Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new run with an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.RunnerConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.scene = scene.New()
	g.camera = scene.DefaultCamera()
	g.stats = core.RunStats{}
	g.topTier = 0
	g.cause = ""
	g.gameOver = false
	g.paused = false
	g.err = nil

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	steps := lo.Map(cfg.Tiers, func(t config.TierConfig, _ int) track.Step {
		return track.Step{At: t.At, Tier: track.Tier{Name: t.Name, Gap: t.Gap, Hazard: t.Hazard, Pickup: t.Pickup}}
	})
	schedule, err := track.NewSchedule(steps)
	if err != nil {
		g.fail(err)
		return
	}

	offset := 0.0
	if g.difficulty.IsEnabled() {
		offset = cfg.Difficulty.InitialLevel * steps[len(steps)-1].At
	}
	g.clock.Reset(offset)

	g.scheduler = track.NewScheduler(schedule, cfg.Track.Lanes, rng,
		track.WithBurst(cfg.Spawn.Burst),
		track.WithHazardLaneChance(cfg.Spawn.HazardLaneChance),
		track.WithSchedulerLogger(logger),
	)
	g.track, err = track.New(trackConfig(cfg), g.scene, g.scheduler, &g.clock,
		track.WithLogger(logger),
		track.WithRand(rng),
	)
	if err != nil {
		g.fail(err)
		return
	}

	lane := g.track.Lanes() / 2
	x, _ := g.track.LaneX(lane)
	g.player = newPlayer(cfg.Player, g.scene, lane, x)
	g.gun = newGun(cfg.Gun, g.scene)
	g.chaser = newChaser(cfg.Chaser, g.scene)
	g.speed = cfg.Track.BaseSpeed
	g.stats.Tier = g.scheduler.Tier().Name
	logger.Debug("run started", "seed", seed, "tier", g.stats.Tier, "offset", offset)
}

func trackConfig(cfg config.RunnerConfig) track.Config {
	fallRate, rowSeconds := 0.0, 0.0
	if cfg.Track.BaseSpeed > 0 {
		fallRate = cfg.Hazards.MeteoriteFallSpeed / cfg.Track.BaseSpeed
		rowSeconds = cfg.Track.TileWidth / cfg.Track.BaseSpeed
	}
	return track.Config{
		Rows:            cfg.Track.Rows,
		Lanes:           cfg.Track.Lanes,
		TileWidth:       cfg.Track.TileWidth,
		TileHeight:      cfg.Track.TileHeight,
		RecycleBoundary: cfg.Track.RecycleBoundary,
		SafeRows:        cfg.Track.SafeRows,
		RowSeconds:      rowSeconds,
		Hazards: track.HazardTuning{
			Jitter:          cfg.Hazards.Jitter,
			MeteoriteHeight: cfg.Hazards.MeteoriteHeight,
			FallRate:        fallRate,
			DestroyTicks:    cfg.Hazards.DestroyTicks,
			FlickerInterval: cfg.Hazards.FlickerInterval,
			ToppleStep:      cfg.Hazards.ToppleStep,
		},
	}
}

func (g *Game) fail(err error) {
	logger.Error("cannot start run", "err", err)
	g.err = err
	g.gameOver = true
	g.cause = "config error"
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickSeconds()
	g.clock.Advance(dt)
	p := g.player

	if in.Has(core.ActionLeft) {
		p.Lane = g.track.ClampLane(p.Lane - 1)
	}
	if in.Has(core.ActionRight) {
		p.Lane = g.track.ClampLane(p.Lane + 1)
	}
	if in.Has(core.ActionJump) {
		p.Jump()
	}
	if in.Has(core.ActionDuck) {
		p.StopJump()
	}
	if in.Has(core.ActionFire) {
		g.gun.Fire(p.center().Add(core.V3(0, 0, -p.cfg.Depth)))
	}

	// Track first, so collisions see this tick's spawns.
	g.speed = g.difficulty.Speed(g.cfg.Track.BaseSpeed, g.clock.Session(), g.track.Distance())
	g.track.Advance(g.speed * dt)
	g.trackTier()

	targetX, _ := g.track.LaneX(p.Lane)
	p.update(dt, targetX, g.supported())

	g.track.CheckActorCollision(p.Bounds(), func(h *track.Hazard) {
		if p.Hit() {
			g.stats.Hits++
			g.chaser.Closer()
			logger.Debug("hit hazard", "variant", h.Variant, "health", p.Health)
		}
	})
	g.track.CheckPickupCollision(p.Bounds(), func(pk *track.Pickup) {
		g.stats.Pickups++
		p.Refuel()
		logger.Debug("picked up", "kind", pk.Kind)
	})
	g.stats.Kills += g.gun.update(dt, g.track)
	g.chaser.follow(core.V3(p.X, 0, 0))
	g.stats.Distance = g.track.Distance()

	switch {
	case p.Health <= 0:
		g.end("caught")
	case p.Fell():
		g.end("fell")
	}

	return core.StepResult{State: g.State()}
}

// supported reports whether a visible tile lies under the player.
func (g *Game) supported() bool {
	seg, err := g.track.SegmentNearest(g.player.X, 0)
	if err != nil {
		logger.Error("track query failed", "err", err)
		return false
	}
	return !seg.IsGap()
}

func (g *Game) trackTier() {
	if idx := g.scheduler.TierIndex(); idx > g.topTier {
		g.topTier = idx
		g.stats.Tier = g.scheduler.Tier().Name
	}
}

func (g *Game) end(cause string) {
	g.gameOver = true
	g.cause = cause
	logger.Info("run over",
		"cause", cause,
		"score", g.score(),
		"distance", math.Round(g.stats.Distance),
		"tier", g.stats.Tier,
		"hits", g.stats.Hits,
		"kills", g.stats.Kills,
	)
}

func (g *Game) score() int {
	return int(math.Floor(g.clock.Session()))
}

// Cause returns why the last run ended, or "" while running.
func (g *Game) Cause() string {
	return g.cause
}

// Track exposes the engine, mostly for tests and debugging views.
func (g *Game) Track() *track.Track {
	return g.track
}

// Player returns the avatar.
func (g *Game) Player() *Player {
	return g.player
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
		Stats:    g.stats,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
