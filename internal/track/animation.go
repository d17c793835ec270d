package track

import "math"

type animKind uint8

const (
	animNone animKind = iota
	animTopple
	animDestroy
)

// animation is per-hazard state stepped once per Advance.
type animation struct {
	kind  animKind
	ticks int
}

// step advances the hazard animation by one tick and reports whether
// the hazard should now be detached and released.
func (h *Hazard) step(cfg HazardTuning) bool {
	m := h.mesh
	if m == nil {
		return false
	}
	switch h.anim.kind {
	case animTopple:
		m.Tilt = math.Min(m.Tilt+cfg.ToppleStep, math.Pi/2)
		if m.Tilt >= math.Pi/2 {
			h.anim = animation{}
		}
	case animDestroy:
		h.anim.ticks++
		if h.anim.ticks >= cfg.DestroyTicks {
			return true
		}
		if cfg.FlickerInterval > 0 && h.anim.ticks%cfg.FlickerInterval == 0 {
			m.Visible = !m.Visible
		}
	}
	return false
}

func (h *Hazard) startTopple() {
	if h.anim.kind == animNone {
		h.anim = animation{kind: animTopple}
	}
}

func (h *Hazard) startDestroy() {
	h.anim = animation{kind: animDestroy}
}
