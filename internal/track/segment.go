package track

import "github.com/vovakirdan/lane-runner/internal/scene"

// Attachment is what a segment carries: nil, *Hazard or *Pickup.
// The set is closed; a segment holds at most one attachment at a time.
type Attachment interface {
	base() *entity
}

// HazardVariant enumerates hazard shapes.
type HazardVariant uint8

const (
	HazardGate      HazardVariant = iota // Low bar across the lane, jumpable
	HazardBlock                          // Solid cube
	HazardMeteorite                      // Falls from the sky onto the lane
	hazardVariantCount
)

// String returns the variant name.
func (v HazardVariant) String() string {
	switch v {
	case HazardGate:
		return "gate"
	case HazardBlock:
		return "block"
	case HazardMeteorite:
		return "meteorite"
	default:
		return "unknown"
	}
}

// Hazard is an obstacle owned by a segment.
type Hazard struct {
	entity
	Variant HazardVariant
	restY   float64 // Center height once resting on the track
	anim    animation
}

// Destroying reports whether the hazard is playing its destruction sequence.
func (h *Hazard) Destroying() bool {
	return h.anim.kind == animDestroy
}

// PickupKind enumerates pickup types.
type PickupKind uint8

const (
	PickupJetPack PickupKind = iota // Fuel for a timed flight
)

// String returns the pickup name.
func (k PickupKind) String() string {
	switch k {
	case PickupJetPack:
		return "jetpack"
	default:
		return "unknown"
	}
}

// Pickup is a collectible owned by a segment.
type Pickup struct {
	entity
	Kind PickupKind
}

// Segment is one lane-cell of track, the atomic recyclable unit.
type Segment struct {
	Lane    int
	X, Z    float64
	Visible bool // False means the segment is a gap
	surface *scene.Mesh
	attach  Attachment
}

// IsGap reports whether the segment has no walkable surface.
func (s *Segment) IsGap() bool {
	return !s.Visible
}

// Attachment returns the attached hazard or pickup, or nil.
func (s *Segment) Attachment() Attachment {
	return s.attach
}

// Hazard returns the attached hazard, if any.
func (s *Segment) Hazard() (*Hazard, bool) {
	h, ok := s.attach.(*Hazard)
	return h, ok
}

// Pickup returns the attached pickup, if any.
func (s *Segment) Pickup() (*Pickup, bool) {
	p, ok := s.attach.(*Pickup)
	return p, ok
}

// Surface returns the walkable tile mesh.
func (s *Segment) Surface() *scene.Mesh {
	return s.surface
}
