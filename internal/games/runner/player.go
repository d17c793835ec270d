package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// Ground is where a player resting on a tile stands.
const Ground = 0.0

// Player is the runner avatar. Y is the height of its feet.
type Player struct {
	cfg      config.PlayerConfig
	mesh     *scene.Mesh
	Lane     int
	X, Y     float64
	VY       float64
	Grounded bool
	jumps    int     // Jumps since last touching ground
	Health   int
	flicker  float64 // Seconds of post-hit invulnerability left
	blink    float64
	Fuel     float64 // Seconds of jet-pack flight left
}

func newPlayer(cfg config.PlayerConfig, scn *scene.Scene, lane int, x float64) *Player {
	m := scn.CreateMesh(scene.Box(cfg.Width, cfg.Height, cfg.Depth), scene.Material{Color: core.ColorBrightCyan, Glyph: '█'})
	p := &Player{
		cfg:      cfg,
		mesh:     m,
		Lane:     lane,
		X:        x,
		Grounded: true,
		Health:   cfg.Health,
	}
	p.sync()
	scn.AddToScene(m)
	return p
}

// Flying reports whether the jet pack is lifting the player.
func (p *Player) Flying() bool {
	return p.Fuel > 0
}

// Invulnerable reports whether a recent hit still shields the player.
func (p *Player) Invulnerable() bool {
	return p.flicker > 0
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() core.Box3 {
	return core.BoxFromCenter(p.center(), core.V3(p.cfg.Width, p.cfg.Height, p.cfg.Depth))
}

func (p *Player) center() core.Vec3 {
	return core.V3(p.X, p.Y+p.cfg.Height/2, 0)
}

// Jump starts a jump from the ground or a single mid-air double jump.
func (p *Player) Jump() {
	if p.Flying() {
		return
	}
	switch {
	case p.Grounded:
		p.jumps = 1
	case p.jumps < 2:
		p.jumps = 2
	default:
		return
	}
	p.VY = p.cfg.JumpVelocity
	p.Grounded = false
}

// StopJump cuts a jump short and drops the player quickly.
func (p *Player) StopJump() {
	if p.Grounded || p.Flying() {
		return
	}
	p.VY = math.Min(p.VY, 0) - p.cfg.JumpVelocity/2
}

// Hit applies one point of damage unless the player is shielded.
// It reports whether damage was taken.
func (p *Player) Hit() bool {
	if p.Invulnerable() || p.Health <= 0 {
		return false
	}
	p.Health--
	p.flicker = p.cfg.HitFlicker
	p.blink = 0
	return true
}

// Refuel adds one jet pack worth of flight.
func (p *Player) Refuel() {
	p.Fuel = p.cfg.JetPackSeconds
	p.Grounded = false
	p.VY = 0
}

// update moves the player one tick. support reports whether a walkable tile
// lies under the player.
func (p *Player) update(dt, targetX float64, support bool) {
	p.X += (targetX - p.X) * p.cfg.LaneLerp

	if p.Flying() {
		p.Fuel = math.Max(0, p.Fuel-dt)
		p.Y += (p.cfg.FlyAltitude - p.Y) * p.cfg.FlyLerp
		p.jumps = 1
	} else if !p.Grounded || !support {
		prevY := p.Y
		p.Grounded = false
		p.VY += p.cfg.Gravity * dt
		p.Y += p.VY * dt
		if support && prevY >= Ground && p.Y <= Ground {
			p.Y = Ground
			p.VY = 0
			p.Grounded = true
			p.jumps = 0
		}
	}

	if p.flicker > 0 {
		p.flicker = math.Max(0, p.flicker-dt)
		p.blink += dt
		if p.blink >= p.cfg.FlickerPeriod {
			p.blink = 0
			p.mesh.Visible = !p.mesh.Visible
		}
		if p.flicker == 0 {
			p.mesh.Visible = true
		}
	}
	p.sync()
}

// Fell reports whether the player dropped through a gap.
func (p *Player) Fell() bool {
	return p.Y < p.cfg.FallLimit
}

func (p *Player) sync() {
	p.mesh.Position = p.center()
}
