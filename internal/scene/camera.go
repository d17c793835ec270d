package scene

import (
	"math"
	"sort"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Camera is a pinhole camera looking down -Z.
type Camera struct {
	Position core.Vec3
	Horizon  float64 // Horizon height as a fraction of screen height
	Focal    float64 // Focal length as a fraction of screen height
	Aspect   float64 // Terminal cell height/width ratio
	Near     float64 // Closest drawable depth
}

// DefaultCamera sits above and behind the player, like a chase camera.
func DefaultCamera() Camera {
	return Camera{
		Position: core.V3(0, 3, 6),
		Horizon:  0.3,
		Focal:    1.1,
		Aspect:   2.0,
		Near:     0.5,
	}
}

// Project maps a world point to fractional screen coordinates.
// ok is false when the point is behind the near plane.
func (c Camera) Project(p core.Vec3, w, h int) (sx, sy, depth float64, ok bool) {
	depth = c.Position.Z - p.Z
	if depth < c.Near {
		return 0, 0, depth, false
	}
	f := c.Focal * float64(h)
	sx = float64(w)/2 + (p.X-c.Position.X)*f*c.Aspect/depth
	sy = float64(h)*c.Horizon + (c.Position.Y-p.Y)*f/depth
	return sx, sy, depth, true
}

type point struct{ x, y float64 }

// Render draws every visible mesh of the scene, far to near.
func (s *Scene) Render(dst *core.Screen, cam Camera) {
	type item struct {
		mesh  *Mesh
		depth float64
	}
	items := make([]item, 0, len(s.meshes))
	for _, m := range s.meshes {
		if !m.Visible {
			continue
		}
		items = append(items, item{mesh: m, depth: cam.Position.Z - m.Position.Z})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].depth != items[j].depth {
			return items[i].depth > items[j].depth
		}
		return items[i].mesh.id < items[j].mesh.id
	})

	for _, it := range items {
		s.drawMesh(dst, cam, it.mesh)
	}
}

func (s *Scene) drawMesh(dst *core.Screen, cam Camera, m *Mesh) {
	box := s.ComputeBoundingBox(m)
	corners := make([]point, 0, 8)
	for _, x := range []float64{box.Min.X, box.Max.X} {
		for _, y := range []float64{box.Min.Y, box.Max.Y} {
			for _, z := range []float64{box.Min.Z, box.Max.Z} {
				sx, sy, _, ok := cam.Project(core.V3(x, y, z), dst.Width(), dst.Height())
				if !ok {
					return
				}
				corners = append(corners, point{sx, sy})
			}
		}
	}
	fillPolygon(dst, convexHull(corners), m.Material)
}

// convexHull returns the hull of pts in counter-clockwise order (monotone chain).
func convexHull(pts []point) []point {
	if len(pts) < 3 {
		return pts
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x != pts[j].x {
			return pts[i].x < pts[j].x
		}
		return pts[i].y < pts[j].y
	})
	cross := func(o, a, b point) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}
	hull := make([]point, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// fillPolygon scan-converts a convex polygon, filling cells whose centers are inside.
// Degenerate hulls still get at least one cell so tiny far objects stay visible.
func fillPolygon(dst *core.Screen, poly []point, mat Material) {
	if len(poly) == 0 {
		return
	}
	minY, maxY := poly[0].y, poly[0].y
	minX, maxX := poly[0].x, poly[0].x
	for _, p := range poly[1:] {
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
	}

	drawn := false
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		cy := float64(y) + 0.5
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			if (a.y <= cy && b.y > cy) || (b.y <= cy && a.y > cy) {
				x := a.x + (cy-a.y)*(b.x-a.x)/(b.y-a.y)
				lo, hi = math.Min(lo, x), math.Max(hi, x)
			}
		}
		if lo > hi {
			continue
		}
		for x := int(math.Ceil(lo - 0.5)); float64(x)+0.5 <= hi; x++ {
			dst.SetColored(x, y, mat.Glyph, mat.Color)
			drawn = true
		}
	}

	if !drawn {
		dst.SetColored(int((minX+maxX)/2), int((minY+maxY)/2), mat.Glyph, mat.Color)
	}
}
