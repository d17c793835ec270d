// Package track is the procedural track and collision engine of the runner.
//
// The track is a ring of Rows x Lanes segments scrolling toward the camera
// along +Z. Rows crossing the recycle boundary jump to the far end of the
// ring and receive new gaps, hazards or pickups from a Planner. Collision
// queries test axis-aligned boxes against the attachments and surfaces.
package track

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// Config describes the track geometry.
type Config struct {
	Rows            int
	Lanes           int
	TileWidth       float64 // Edge length of a square segment
	TileHeight      float64
	RecycleBoundary float64 // Rows whose Z exceeds this are recycled
	SafeRows        int     // Leading rows left empty at start
	RowSeconds      float64 // Time one row takes to pass at base speed, for initial population
	Hazards         HazardTuning
}

func (c Config) validate() error {
	if c.Rows < 2 || c.Lanes < 1 || c.TileWidth <= 0 || c.RecycleBoundary < 0 {
		return ErrBadGeometry
	}
	return nil
}

// Option configures a Track.
type Option func(*Track)

// WithLogger sets the track logger.
func WithLogger(l *log.Logger) Option {
	return func(t *Track) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithRand sets the random source used for hazard variants and jitter.
func WithRand(rng *rand.Rand) Option {
	return func(t *Track) {
		if rng != nil {
			t.rng = rng
		}
	}
}

// Track owns the segment pool and drives recycling.
type Track struct {
	cfg      Config
	r        Renderer
	planner  Planner
	clock    Clock
	factory  *Factory
	rng      *rand.Rand
	logger   *log.Logger
	rows     [][]*Segment
	front    int // Physical index of the nearest row
	distance float64
	recycled int
}

var (
	tileEven = scene.Material{Color: core.ColorGray, Glyph: '▒'}
	tileOdd  = scene.Material{Color: core.ColorDarkGray, Glyph: '▒'}
)

// New builds the segment pool and populates it through the planner.
func New(cfg Config, r Renderer, planner Planner, clock Clock, opts ...Option) (*Track, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Track{
		cfg:     cfg,
		r:       r,
		planner: planner,
		clock:   clock,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t.factory = NewFactory(r, t.rng, cfg.Hazards)

	geom := scene.Box(cfg.TileWidth, cfg.TileHeight, cfg.TileWidth)
	t.rows = make([][]*Segment, cfg.Rows)
	for i := range t.rows {
		row := make([]*Segment, cfg.Lanes)
		mat := tileEven
		if i%2 == 1 {
			mat = tileOdd
		}
		for lane := range row {
			x := t.laneX(lane)
			z := -float64(i) * cfg.TileWidth
			m := r.CreateMesh(geom, mat)
			m.Position = core.V3(x, -cfg.TileHeight/2, z)
			r.AddToScene(m)
			row[lane] = &Segment{Lane: lane, X: x, Z: z, Visible: true, surface: m}
		}
		t.rows[i] = row
	}

	t.populate()
	t.logger.Debug("track built", "rows", cfg.Rows, "lanes", cfg.Lanes, "segments", cfg.Rows*cfg.Lanes)
	return t, nil
}

// populate plans the initial rows beyond the safe zone.
func (t *Track) populate() {
	var plans []RowPlan
	if p, ok := t.planner.(prefiller); ok {
		rowSeconds := t.cfg.RowSeconds
		if rowSeconds <= 0 {
			rowSeconds = 1
		}
		plans = p.Prefill(t.cfg.Rows, t.cfg.Lanes, rowSeconds)
	}
	for i := max(t.cfg.SafeRows, 1); i < t.cfg.Rows; i++ {
		var plan RowPlan
		if i < len(plans) {
			plan = plans[i]
		}
		if plan.FullGap() && t.fullGap(t.rows[i-1]) {
			plan = nil
		}
		t.applyPlan(t.rows[i], plan)
	}
}

func (t *Track) laneX(lane int) float64 {
	return (float64(lane) - float64(t.cfg.Lanes-1)/2) * t.cfg.TileWidth
}

func (t *Track) elapsed() float64 {
	if t.clock == nil {
		return 0
	}
	return t.clock.ElapsedSeconds()
}

// Advance scrolls the track by delta units toward the camera.
// Movement happens first, then recycling, then per-entity animations.
// Whole turns of the ring are folded out of delta, so one call recycles at
// most Rows rows. Non-finite deltas are ignored.
func (t *Track) Advance(delta float64) {
	if t == nil || len(t.rows) == 0 {
		return
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		t.logger.Warn("ignoring non-finite advance", "delta", delta)
		return
	}
	elapsed := t.elapsed()
	t.planner.Tick(elapsed)

	move := delta
	if ring := float64(t.cfg.Rows) * t.cfg.TileWidth; move > ring {
		move = math.Mod(move, ring)
	}

	for _, row := range t.rows {
		for _, seg := range row {
			seg.Z += move
			seg.surface.Position.Z = seg.Z
			if seg.attach == nil {
				continue
			}
			seg.attach.base().moveZ(move)
			if h, ok := seg.attach.(*Hazard); ok && h.mesh != nil && h.mesh.Position.Y > h.restY {
				h.mesh.Position.Y = math.Max(h.restY, h.mesh.Position.Y-move*t.cfg.Hazards.FallRate)
			}
		}
	}
	t.distance += delta

	for i := 0; i < t.cfg.Rows && t.rows[t.front][0].Z > t.cfg.RecycleBoundary; i++ {
		t.recycleFront(elapsed)
	}

	for _, row := range t.rows {
		for _, seg := range row {
			if seg.attach == nil {
				continue
			}
			if h, ok := seg.attach.(*Hazard); ok && h.step(t.cfg.Hazards) {
				t.detach(seg)
				continue
			}
			seg.attach.base().refresh(t.r)
		}
	}
}

// recycleFront moves the nearest row to the far end of the ring.
func (t *Track) recycleFront(elapsed float64) {
	row := t.rows[t.front]
	ahead := t.rows[(t.front+t.cfg.Rows-1)%t.cfg.Rows]
	shift := float64(t.cfg.Rows) * t.cfg.TileWidth
	for _, seg := range row {
		seg.Z -= shift
		seg.surface.Position.Z = seg.Z
	}
	t.front = (t.front + 1) % t.cfg.Rows
	t.recycled++

	plan := t.planner.PlanRow(elapsed, t.cfg.Lanes)
	if plan.FullGap() && t.fullGap(ahead) {
		t.logger.Debug("suppressed consecutive full-gap row", "elapsed", elapsed)
		plan = nil
	}
	t.applyPlan(row, plan)
}

func (t *Track) fullGap(row []*Segment) bool {
	return lo.EveryBy(row, func(s *Segment) bool { return !s.Visible })
}

// applyPlan replaces the contents of row. A nil plan leaves the row empty.
func (t *Track) applyPlan(row []*Segment, plan RowPlan) {
	for lane, seg := range row {
		t.detach(seg)
		out := OutcomeEmpty
		if lane < len(plan) {
			out = plan[lane]
		}
		seg.Visible = out != OutcomeGap
		seg.surface.Visible = seg.Visible

		pos := core.V3(seg.X, 0, seg.Z)
		switch out {
		case OutcomeHazard:
			seg.attach = t.factory.NewHazard(t.factory.RandomVariant(), pos)
		case OutcomePickup:
			seg.attach = t.factory.NewPickup(PickupJetPack, pos)
		}
	}
}

func (t *Track) detach(seg *Segment) {
	if seg.attach == nil {
		return
	}
	t.factory.Release(seg.attach)
	seg.attach = nil
}

// SegmentNearest returns the segment closest to (x, z) in the XZ plane.
func (t *Track) SegmentNearest(x, z float64) (*Segment, error) {
	if t == nil || len(t.rows) == 0 {
		return nil, ErrNoSegment
	}
	var best *Segment
	bestDist := math.Inf(1)
	for _, row := range t.rows {
		for _, seg := range row {
			dx, dz := seg.X-x, seg.Z-z
			if d := dx*dx + dz*dz; d < bestDist {
				best, bestDist = seg, d
			}
		}
	}
	if best == nil {
		return nil, ErrNoSegment
	}
	return best, nil
}

// LaneX returns the lateral center of a lane.
func (t *Track) LaneX(lane int) (float64, error) {
	if lane < 0 || lane >= t.cfg.Lanes {
		return 0, ErrInvalidLane
	}
	return t.laneX(lane), nil
}

// ClampLane maps any lane index into [0, Lanes).
func (t *Track) ClampLane(lane int) int {
	return core.Clamp(lane, 0, t.cfg.Lanes-1)
}

// TileWidth returns the segment edge length.
func (t *Track) TileWidth() float64 {
	return t.cfg.TileWidth
}

// Lanes returns the number of lanes.
func (t *Track) Lanes() int {
	return t.cfg.Lanes
}

// Rows returns the number of rows in the ring.
func (t *Track) Rows() int {
	return t.cfg.Rows
}

// Row returns the i-th row in logical order, nearest first. Indexes wrap
// around the ring, so Row(-1) is the farthest row.
func (t *Track) Row(i int) []*Segment {
	n := t.cfg.Rows
	return t.rows[((t.front+i)%n+n)%n]
}

// Segments returns every segment in logical order, nearest row first.
func (t *Track) Segments() []*Segment {
	if t == nil || len(t.rows) == 0 {
		return nil
	}
	rows := make([][]*Segment, t.cfg.Rows)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return lo.Flatten(rows)
}

// Distance returns the total scrolled distance.
func (t *Track) Distance() float64 {
	return t.distance
}

// Recycled returns how many rows were recycled so far.
func (t *Track) Recycled() int {
	return t.recycled
}
