package track

import (
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// Renderer is the rendering collaborator. The engine creates and releases
// meshes through it and asks it for bounding boxes, but never draws.
// *scene.Scene satisfies it.
type Renderer interface {
	CreateMesh(g scene.Geometry, m scene.Material) *scene.Mesh
	AddToScene(m *scene.Mesh)
	RemoveFromScene(m *scene.Mesh)
	ComputeBoundingBox(m *scene.Mesh) core.Box3
}

// Clock is the timing collaborator: monotonic game time in seconds,
// frozen while the game is paused or over.
type Clock interface {
	ElapsedSeconds() float64
}

// Planner decides what a recycled row carries. *Scheduler is the production
// implementation; tests substitute fixed plans.
type Planner interface {
	// Tick lets the planner advance its processes once per controller tick.
	Tick(elapsed float64)
	// PlanRow returns one outcome per lane for a row being recycled.
	PlanRow(elapsed float64, lanes int) RowPlan
}

// prefiller is implemented by planners that can populate the initial track.
type prefiller interface {
	Prefill(rows, lanes int, rowSeconds float64) []RowPlan
}
