package track

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// Outcome is what a single segment receives on recycle.
type Outcome uint8

const (
	OutcomeEmpty Outcome = iota
	OutcomeGap
	OutcomeHazard
	OutcomePickup
)

// RowPlan holds one outcome per lane.
type RowPlan []Outcome

// FullGap reports whether every lane of the plan is a gap.
func (p RowPlan) FullGap() bool {
	return len(p) > 0 && lo.EveryBy(p, func(o Outcome) bool { return o == OutcomeGap })
}

// Sample draws an exponentially distributed interval with the given mean.
// A non-positive mean yields +Inf (the process never fires).
func Sample(rng *rand.Rand, avg float64) float64 {
	if avg <= 0 {
		return math.Inf(1)
	}
	return -math.Log(1-rng.Float64()) * avg
}

// Process is the state of one renewal process.
type Process struct {
	Last      float64 // Elapsed time of the last firing
	Next      float64 // Interval until the next firing
	Remaining int     // Segments still to receive the current firing
	Active    bool
	lane      int // Target lane of a pickup firing
}

// Scheduler runs the gap, hazard and pickup processes.
type Scheduler struct {
	schedule   *Schedule
	rng        *rand.Rand
	lanes      int
	burst      int
	laneChance float64
	procs      [kindCount]Process
	tier       int
	logger     *log.Logger
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithBurst sets how many segments one firing covers. Zero means one row.
func WithBurst(n int) SchedulerOption {
	return func(s *Scheduler) {
		if n > 0 {
			s.burst = n
		}
	}
}

// WithHazardLaneChance sets the probability that a lane of a hazard firing gets a hazard.
func WithHazardLaneChance(p float64) SchedulerOption {
	return func(s *Scheduler) {
		s.laneChance = p
	}
}

// WithSchedulerLogger sets the logger used for tier changes.
func WithSchedulerLogger(l *log.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScheduler creates a scheduler for a track with the given lane count.
func NewScheduler(schedule *Schedule, lanes int, rng *rand.Rand, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		schedule:   schedule,
		rng:        rng,
		lanes:      lanes,
		burst:      lanes,
		laneChance: 1.0 / 3.0,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset clears every process and samples first intervals from the first tier.
func (s *Scheduler) Reset() {
	s.tier = 0
	tier := s.schedule.TierFor(0)
	for k := range s.procs {
		s.procs[k] = Process{Next: Sample(s.rng, tier.Interval(Kind(k)))}
	}
}

// Process returns a copy of the state of one process.
func (s *Scheduler) Process(k Kind) Process {
	return s.procs[k]
}

// TierIndex returns the index of the tier seen by the last Tick.
func (s *Scheduler) TierIndex() int {
	return s.tier
}

// Tier returns the tier seen by the last Tick.
func (s *Scheduler) Tier() Tier {
	return s.schedule.steps[s.tier].Tier
}

// Tick fires every process whose interval has elapsed.
func (s *Scheduler) Tick(elapsed float64) {
	if idx := s.schedule.Index(elapsed); idx != s.tier {
		s.tier = idx
		s.logger.Debug("difficulty tier changed", "tier", s.Tier().Name, "elapsed", elapsed)
	}
	tier := s.Tier()

	for k := range s.procs {
		p := &s.procs[k]
		avg := tier.Interval(Kind(k))
		if math.IsInf(p.Next, 1) {
			// Disabled by an earlier tier; restart the clock once re-enabled.
			if avg > 0 {
				p.Last = elapsed
				p.Next = Sample(s.rng, avg)
			}
			continue
		}
		if elapsed-p.Last < p.Next {
			continue
		}
		p.Last = elapsed
		p.Next = Sample(s.rng, avg)
		p.Remaining = s.burst
		p.Active = true
		p.lane = s.rng.Intn(s.lanes)
	}
}

// consume takes one unit of a firing, reporting whether one was available.
func (s *Scheduler) consume(k Kind) bool {
	p := &s.procs[k]
	if !p.Active || p.Remaining <= 0 {
		return false
	}
	p.Remaining--
	if p.Remaining == 0 {
		p.Active = false
	}
	return true
}

// PlanRow spends one unit of each active firing per lane of the recycled row.
// Per segment, a gap wins over a pickup, which wins over a hazard.
func (s *Scheduler) PlanRow(_ float64, lanes int) RowPlan {
	plan := make(RowPlan, lanes)
	pickupLane := s.procs[KindPickup].lane
	for lane := range plan {
		gap := s.consume(KindGap)
		pickup := s.consume(KindPickup) && lane == pickupLane
		hazard := s.consume(KindHazard) && s.rng.Float64() < s.laneChance

		switch {
		case gap:
			plan[lane] = OutcomeGap
		case pickup:
			plan[lane] = OutcomePickup
		case hazard:
			plan[lane] = OutcomeHazard
		}
	}

	// Leave at least one lane passable without jumping.
	if lanes > 1 && lo.EveryBy(plan, func(o Outcome) bool { return o == OutcomeHazard }) {
		plan[s.rng.Intn(lanes)] = OutcomeEmpty
	}
	return plan
}

// Prefill produces plans for the initial track, nearest row first, as if the
// processes had been running for rows*rowSeconds. Process state is reset afterwards
// so the session starts from time zero.
func (s *Scheduler) Prefill(rows, lanes int, rowSeconds float64) []RowPlan {
	plans := make([]RowPlan, rows)
	for i := range plans {
		elapsed := float64(i) * rowSeconds
		s.Tick(elapsed)
		plans[i] = s.PlanRow(elapsed, lanes)
	}
	s.Reset()
	return plans
}
