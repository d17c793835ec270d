// Package scene is a headless scene graph for the runner.
// It owns mesh handles, answers bounding-box queries for the track engine,
// and rasterises visible meshes into a core.Screen through a Camera.
package scene

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// GeometryKind selects the primitive a mesh is built from.
type GeometryKind uint8

const (
	GeometryBox GeometryKind = iota
	GeometrySphere
)

// Geometry describes mesh shape. Size is the full extent at unit scale.
type Geometry struct {
	Kind GeometryKind
	Size core.Vec3
}

// Box returns a box geometry with the given extents.
func Box(w, h, d float64) Geometry {
	return Geometry{Kind: GeometryBox, Size: core.V3(w, h, d)}
}

// Sphere returns a sphere geometry with the given radius.
func Sphere(r float64) Geometry {
	return Geometry{Kind: GeometrySphere, Size: core.V3(2*r, 2*r, 2*r)}
}

// Material describes how a mesh is drawn in the terminal.
type Material struct {
	Color core.Color
	Glyph rune
}

// Mesh is a drawable object handle. Position is the geometry center.
type Mesh struct {
	id       int
	Geometry Geometry
	Material Material
	Position core.Vec3
	Scale    core.Vec3
	Tilt     float64 // Rotation around the X axis in radians
	Visible  bool
	inScene  bool
}

// ID returns the scene-unique id of the mesh.
func (m *Mesh) ID() int {
	return m.id
}

// InScene reports whether the mesh is currently added to a scene.
func (m *Mesh) InScene() bool {
	return m.inScene
}

// Scene holds every mesh created for a session.
type Scene struct {
	meshes map[int]*Mesh
	nextID int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{meshes: make(map[int]*Mesh)}
}

// CreateMesh builds a visible mesh at the origin. It is not drawn until added.
func (s *Scene) CreateMesh(g Geometry, m Material) *Mesh {
	s.nextID++
	return &Mesh{
		id:       s.nextID,
		Geometry: g,
		Material: m,
		Scale:    core.V3(1, 1, 1),
		Visible:  true,
	}
}

// AddToScene makes the mesh part of the drawn scene.
func (s *Scene) AddToScene(m *Mesh) {
	if m == nil {
		return
	}
	m.inScene = true
	s.meshes[m.id] = m
}

// RemoveFromScene detaches the mesh. Removing an absent mesh is a no-op.
func (s *Scene) RemoveFromScene(m *Mesh) {
	if m == nil {
		return
	}
	m.inScene = false
	delete(s.meshes, m.id)
}

// ComputeBoundingBox returns the world-space AABB of the mesh,
// accounting for scale and tilt.
func (s *Scene) ComputeBoundingBox(m *Mesh) core.Box3 {
	size := m.Geometry.Size.Mul(m.Scale)
	if m.Tilt != 0 && m.Geometry.Kind == GeometryBox {
		sin, cos := math.Abs(math.Sin(m.Tilt)), math.Abs(math.Cos(m.Tilt))
		size = core.V3(size.X, cos*size.Y+sin*size.Z, sin*size.Y+cos*size.Z)
	}
	return core.BoxFromCenter(m.Position, size)
}

// Len returns the number of meshes currently in the scene.
func (s *Scene) Len() int {
	return len(s.meshes)
}

// Meshes returns the meshes in the scene ordered by id.
func (s *Scene) Meshes() []*Mesh {
	out := lo.Values(s.meshes)
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
