package track

import "github.com/vovakirdan/lane-runner/internal/core"

// HitKind tells what a projectile struck.
type HitKind uint8

const (
	HitHazard HitKind = iota
	HitSurface
)

// ProjectileHit describes the first thing a projectile struck.
type ProjectileHit struct {
	Kind    HitKind
	Segment *Segment
	Hazard  *Hazard // Set for HitHazard
}

// CheckActorCollision tests bounds against every unconsumed hazard.
// Each hazard reports at most once per spawn; it is marked consumed and
// starts toppling. It returns the number of new hits.
func (t *Track) CheckActorCollision(bounds core.Box3, onHit func(*Hazard)) int {
	hits := 0
	t.eachLive(func(seg *Segment, e *entity) {
		h, ok := seg.attach.(*Hazard)
		if !ok || !t.touches(e, bounds) {
			return
		}
		e.consumed = true
		h.startTopple()
		hits++
		if onHit != nil {
			onHit(h)
		}
	})
	return hits
}

// CheckPickupCollision tests bounds against every unconsumed pickup.
// A collected pickup is consumed, detached and released.
func (t *Track) CheckPickupCollision(bounds core.Box3, onPickup func(*Pickup)) int {
	hits := 0
	t.eachLive(func(seg *Segment, e *entity) {
		p, ok := seg.attach.(*Pickup)
		if !ok || !t.touches(e, bounds) {
			return
		}
		e.consumed = true
		hits++
		if onPickup != nil {
			onPickup(p)
		}
		t.detach(seg)
	})
	return hits
}

// CheckProjectileCollision reports whether bounds hit a hazard or a visible
// track surface. Hazards are tested first; a hit hazard is consumed and
// starts its destruction sequence. onHit is called at most once.
func (t *Track) CheckProjectileCollision(bounds core.Box3, onHit func(ProjectileHit)) bool {
	var hit *ProjectileHit
	t.eachLive(func(seg *Segment, e *entity) {
		if hit != nil {
			return
		}
		h, ok := seg.attach.(*Hazard)
		if !ok || !t.touches(e, bounds) {
			return
		}
		e.consumed = true
		h.startDestroy()
		hit = &ProjectileHit{Kind: HitHazard, Segment: seg, Hazard: h}
	})
	if hit == nil {
		for _, seg := range t.Segments() {
			if seg.Visible && t.r.ComputeBoundingBox(seg.surface).Intersects(bounds) {
				hit = &ProjectileHit{Kind: HitSurface, Segment: seg}
				break
			}
		}
	}
	if hit == nil {
		return false
	}
	if onHit != nil {
		onHit(*hit)
	}
	return true
}

// eachLive visits segments whose attachment is still in the scene and unconsumed.
func (t *Track) eachLive(fn func(*Segment, *entity)) {
	if t == nil {
		return
	}
	for _, row := range t.rows {
		for _, seg := range row {
			if seg.attach == nil {
				continue
			}
			e := seg.attach.base()
			if e.mesh == nil || e.consumed {
				continue
			}
			fn(seg, e)
		}
	}
}

// touches refreshes the entity bounds and tests them against b.
func (t *Track) touches(e *entity, b core.Box3) bool {
	box, ok := e.refresh(t.r)
	return ok && box.Intersects(b)
}
