package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// Chaser is the monster running behind the player. Every hit lets it close in.
type Chaser struct {
	cfg    config.ChaserConfig
	mesh   *scene.Mesh
	offset float64
}

func newChaser(cfg config.ChaserConfig, scn *scene.Scene) *Chaser {
	m := scn.CreateMesh(scene.Box(1.2, 1.8, 1), scene.Material{Color: core.ColorMagenta, Glyph: 'M'})
	m.Position = core.V3(0, 0.9, cfg.Offset)
	scn.AddToScene(m)
	return &Chaser{cfg: cfg, mesh: m, offset: cfg.Offset}
}

// Offset returns the distance the chaser wants to keep.
func (c *Chaser) Offset() float64 {
	return c.offset
}

// Position returns the chaser center.
func (c *Chaser) Position() core.Vec3 {
	return c.mesh.Position
}

// Closer moves the chaser one step nearer.
func (c *Chaser) Closer() {
	c.offset = math.Max(c.cfg.MinOffset, c.offset-c.cfg.HitStep)
}

func (c *Chaser) follow(target core.Vec3) {
	p := &c.mesh.Position
	p.X = core.Lerp(p.X, target.X, c.cfg.FollowX)
	p.Z = core.Lerp(p.Z, target.Z+c.offset, c.cfg.FollowZ)
}
