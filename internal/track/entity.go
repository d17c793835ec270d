package track

import (
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// entity is the state shared by hazards and pickups.
type entity struct {
	mesh     *scene.Mesh
	bounds   *core.Box3 // Last refreshed bounding box, nil once released
	consumed bool       // Set on the first collision of this spawn
}

func (e *entity) base() *entity { return e }

// Mesh returns the scene handle, or nil once released.
func (e *entity) Mesh() *scene.Mesh {
	return e.mesh
}

// Consumed reports whether the entity already produced its collision event.
func (e *entity) Consumed() bool {
	return e.consumed
}

// Released reports whether the entity was removed from the scene.
func (e *entity) Released() bool {
	return e.mesh == nil
}

// Bounds returns the world box as of the last Advance or collision check.
// ok is false for released entities.
func (e *entity) Bounds() (box core.Box3, ok bool) {
	if e.bounds == nil {
		return core.Box3{}, false
	}
	return *e.bounds, true
}

// Position returns the mesh center, or the zero vector once released.
func (e *entity) Position() core.Vec3 {
	if e.mesh == nil {
		return core.Vec3{}
	}
	return e.mesh.Position
}

// refresh recomputes the bounding box from the current transform.
// Released entities are skipped.
func (e *entity) refresh(r Renderer) (core.Box3, bool) {
	if e.mesh == nil {
		return core.Box3{}, false
	}
	b := r.ComputeBoundingBox(e.mesh)
	e.bounds = &b
	return b, true
}

func (e *entity) moveZ(dz float64) {
	if e.mesh != nil {
		e.mesh.Position.Z += dz
	}
}
