package track

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// HazardTuning holds the hazard shape and animation parameters.
type HazardTuning struct {
	Jitter          float64 // Max relative per-axis scale deviation
	MeteoriteHeight float64 // Spawn height above the track
	FallRate        float64 // Meteorite drop per unit of scrolled distance
	DestroyTicks    int
	FlickerInterval int
	ToppleStep      float64 // Radians per tick
}

type look struct {
	geometry scene.Geometry
	material scene.Material
}

var hazardLooks = [hazardVariantCount]look{
	HazardGate:      {scene.Box(1.8, 0.5, 0.25), scene.Material{Color: core.ColorRed, Glyph: '▀'}},
	HazardBlock:     {scene.Box(1, 1, 1), scene.Material{Color: core.ColorGreen, Glyph: '█'}},
	HazardMeteorite: {scene.Sphere(0.45), scene.Material{Color: core.ColorOrange, Glyph: '@'}},
}

var pickupLooks = map[PickupKind]look{
	PickupJetPack: {scene.Box(0.5, 0.7, 0.4), scene.Material{Color: core.ColorBrightYellow, Glyph: 'J'}},
}

// pickupFloat is how far above the track a pickup hovers.
const pickupFloat = 0.6

// Factory creates and releases hazard and pickup entities.
type Factory struct {
	r      Renderer
	rng    *rand.Rand
	tuning HazardTuning
}

// NewFactory creates a factory drawing randomness from rng.
func NewFactory(r Renderer, rng *rand.Rand, tuning HazardTuning) *Factory {
	return &Factory{r: r, rng: rng, tuning: tuning}
}

// RandomVariant picks a hazard variant uniformly.
func (f *Factory) RandomVariant() HazardVariant {
	return HazardVariant(f.rng.Intn(int(hazardVariantCount)))
}

func (f *Factory) jitter() core.Vec3 {
	j := f.tuning.Jitter
	if j <= 0 {
		return core.V3(1, 1, 1)
	}
	axis := func() float64 { return 1 + (f.rng.Float64()*2-1)*j }
	return core.V3(axis(), axis(), axis())
}

// NewHazard builds a hazard resting on the track at pos (x and z are used).
// Meteorites start MeteoriteHeight above their resting point.
func (f *Factory) NewHazard(v HazardVariant, pos core.Vec3) *Hazard {
	lk := hazardLooks[v]
	m := f.r.CreateMesh(lk.geometry, lk.material)
	m.Scale = f.jitter()

	h := &Hazard{Variant: v}
	h.restY = lk.geometry.Size.Y * m.Scale.Y / 2
	m.Position = core.V3(pos.X, h.restY, pos.Z)
	if v == HazardMeteorite {
		m.Position.Y += f.tuning.MeteoriteHeight
	}
	f.r.AddToScene(m)

	h.mesh = m
	h.refresh(f.r)
	return h
}

// NewPickup builds a pickup hovering above the track at pos.
func (f *Factory) NewPickup(k PickupKind, pos core.Vec3) *Pickup {
	lk := pickupLooks[k]
	m := f.r.CreateMesh(lk.geometry, lk.material)
	m.Position = core.V3(pos.X, lk.geometry.Size.Y/2+pickupFloat, pos.Z)
	f.r.AddToScene(m)

	p := &Pickup{Kind: k}
	p.mesh = m
	p.refresh(f.r)
	return p
}

// Release removes the entity mesh from the scene and drops its bounds.
// Releasing nil or an already released entity is a no-op.
func (f *Factory) Release(a Attachment) {
	if a == nil {
		return
	}
	e := a.base()
	if e.mesh == nil {
		return
	}
	f.r.RemoveFromScene(e.mesh)
	e.mesh = nil
	e.bounds = nil
}
