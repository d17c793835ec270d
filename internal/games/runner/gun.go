package runner

import (
	"math"

	"github.com/samber/lo"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
	"github.com/vovakirdan/lane-runner/internal/track"
)

// Bullet is a projectile flying down the track.
type Bullet struct {
	mesh *scene.Mesh
	vy   float64
}

// Position returns the bullet center.
func (b *Bullet) Position() core.Vec3 {
	return b.mesh.Position
}

// Gun fires bullets on a cooldown and resolves their hits.
type Gun struct {
	cfg     config.GunConfig
	scn     *scene.Scene
	wait    float64 // Seconds until the next shot
	bullets []*Bullet
}

func newGun(cfg config.GunConfig, scn *scene.Scene) *Gun {
	return &Gun{cfg: cfg, scn: scn}
}

// Ready reports whether the cooldown has elapsed.
func (g *Gun) Ready() bool {
	return g.wait <= 0
}

// Charge returns the cooldown progress in [0, 1].
func (g *Gun) Charge() float64 {
	if g.cfg.Cooldown <= 0 {
		return 1
	}
	return core.ClampF(1-g.wait/g.cfg.Cooldown, 0, 1)
}

// Bullets returns the bullets in flight.
func (g *Gun) Bullets() []*Bullet {
	return g.bullets
}

// Fire shoots a bullet from origin if the gun is ready.
func (g *Gun) Fire(origin core.Vec3) bool {
	if !g.Ready() {
		return false
	}
	m := g.scn.CreateMesh(scene.Sphere(g.cfg.Size/2), scene.Material{Color: core.ColorBrightYellow, Glyph: '•'})
	m.Position = origin
	g.scn.AddToScene(m)
	g.bullets = append(g.bullets, &Bullet{mesh: m})
	g.wait = g.cfg.Cooldown
	return true
}

// update moves bullets, tests them against the track, and culls the rest.
// It returns the number of hazards destroyed.
func (g *Gun) update(dt float64, tr *track.Track) int {
	g.wait = math.Max(0, g.wait-dt)

	kills := 0
	g.bullets = lo.Filter(g.bullets, func(b *Bullet, _ int) bool {
		b.vy -= g.cfg.Drop * dt
		b.mesh.Position.Z -= g.cfg.Speed * dt
		b.mesh.Position.Y += b.vy * dt

		hit := tr.CheckProjectileCollision(g.scn.ComputeBoundingBox(b.mesh), func(h track.ProjectileHit) {
			if h.Kind == track.HitHazard {
				kills++
			}
		})
		if hit || b.mesh.Position.Len() > g.cfg.Range {
			g.scn.RemoveFromScene(b.mesh)
			return false
		}
		return true
	})
	return kills
}
