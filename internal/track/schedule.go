package track

import (
	"sort"

	"github.com/samber/lo"
)

// Kind identifies one of the three spawn processes.
type Kind uint8

const (
	KindGap Kind = iota
	KindHazard
	KindPickup
	kindCount
)

// String returns the process name.
func (k Kind) String() string {
	switch k {
	case KindGap:
		return "gap"
	case KindHazard:
		return "hazard"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Tier bundles the average inter-arrival seconds of each process.
// A non-positive interval disables that process while the tier is active.
type Tier struct {
	Name   string
	Gap    float64
	Hazard float64
	Pickup float64
}

// Interval returns the average interval for the given process.
func (t Tier) Interval(k Kind) float64 {
	switch k {
	case KindGap:
		return t.Gap
	case KindHazard:
		return t.Hazard
	case KindPickup:
		return t.Pickup
	default:
		return 0
	}
}

// Step activates Tier once the session reaches At seconds.
type Step struct {
	At   float64
	Tier Tier
}

// Schedule maps elapsed session time to a tier. Steps never interpolate.
type Schedule struct {
	steps []Step
}

// NewSchedule validates and wraps the steps.
func NewSchedule(steps []Step) (*Schedule, error) {
	if len(steps) == 0 {
		return nil, ErrEmptySchedule
	}
	if !lo.IsSortedByKey(steps, func(s Step) float64 { return s.At }) {
		return nil, ErrUnsortedSchedule
	}
	return &Schedule{steps: append([]Step(nil), steps...)}, nil
}

// Index returns the position of the last step whose threshold is <= elapsed.
// Times before the first threshold map to the first step.
func (s *Schedule) Index(elapsed float64) int {
	i := sort.Search(len(s.steps), func(i int) bool {
		return s.steps[i].At > elapsed
	}) - 1
	return max(i, 0)
}

// TierFor returns the tier active at elapsed seconds.
func (s *Schedule) TierFor(elapsed float64) Tier {
	return s.steps[s.Index(elapsed)].Tier
}

// Len returns the number of steps.
func (s *Schedule) Len() int {
	return len(s.steps)
}

// Steps returns a copy of the schedule steps.
func (s *Schedule) Steps() []Step {
	return append([]Step(nil), s.steps...)
}
