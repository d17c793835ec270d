package track

import (
	"math"
	"math/rand"
	"testing"
)

func newTestScheduler(t *testing.T, tier Tier, opts ...SchedulerOption) *Scheduler {
	t.Helper()
	s, err := NewSchedule([]Step{{At: 0, Tier: tier}})
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	return NewScheduler(s, 3, rand.New(rand.NewSource(3)), opts...)
}

func count(plan RowPlan, o Outcome) int {
	n := 0
	for _, v := range plan {
		if v == o {
			n++
		}
	}
	return n
}

func TestSchedulerFiring(t *testing.T) {
	s := newTestScheduler(t, Tier{Gap: 1})

	if !math.IsInf(s.Process(KindHazard).Next, 1) {
		t.Error("disabled hazard process should never fire")
	}

	s.Tick(1000)
	p := s.Process(KindGap)
	if !p.Active || p.Remaining != 3 || p.Last != 1000 {
		t.Fatalf("gap process after firing = %+v", p)
	}

	plan := s.PlanRow(1000, 3)
	if !plan.FullGap() {
		t.Errorf("plan = %v, want full gap row", plan)
	}
	if p := s.Process(KindGap); p.Active || p.Remaining != 0 {
		t.Errorf("gap process should be spent, got %+v", p)
	}

	plan = s.PlanRow(1000, 3)
	if count(plan, OutcomeEmpty) != 3 {
		t.Errorf("plan after spent firing = %v, want empty row", plan)
	}
}

func TestSchedulerNoFiringBeforeInterval(t *testing.T) {
	s := newTestScheduler(t, Tier{Gap: 1})
	next := s.Process(KindGap).Next

	s.Tick(next / 2)
	if s.Process(KindGap).Active {
		t.Error("process fired before its interval elapsed")
	}
}

func TestSchedulerPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		tier       Tier
		wantGap    int
		wantPickup int
		wantHazard int
	}{
		{"gap beats everything", Tier{Gap: 1e-9, Hazard: 1e-9, Pickup: 1e-9}, 3, 0, 0},
		{"pickup beats hazard", Tier{Hazard: 1e-9, Pickup: 1e-9}, 0, 1, 2},
		{"hazards leave a lane open", Tier{Hazard: 1e-9}, 0, 0, 2},
		{"lone pickup", Tier{Pickup: 1e-9}, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScheduler(t, tt.tier, WithHazardLaneChance(1))
			s.Tick(1)
			plan := s.PlanRow(1, 3)

			if got := count(plan, OutcomeGap); got != tt.wantGap {
				t.Errorf("gaps = %d, want %d (plan %v)", got, tt.wantGap, plan)
			}
			if got := count(plan, OutcomePickup); got != tt.wantPickup {
				t.Errorf("pickups = %d, want %d (plan %v)", got, tt.wantPickup, plan)
			}
			if got := count(plan, OutcomeHazard); got != tt.wantHazard {
				t.Errorf("hazards = %d, want %d (plan %v)", got, tt.wantHazard, plan)
			}
		})
	}
}

func TestSchedulerBurst(t *testing.T) {
	s := newTestScheduler(t, Tier{Gap: 1e-9}, WithBurst(6))
	s.Tick(1)

	for row := 0; row < 2; row++ {
		if plan := s.PlanRow(1, 3); !plan.FullGap() {
			t.Errorf("row %d: plan = %v, want full gap", row, plan)
		}
	}
	if plan := s.PlanRow(1, 3); plan.FullGap() {
		t.Error("burst of 6 should cover exactly two rows")
	}
}

func TestSchedulerReenabledProcess(t *testing.T) {
	sched, err := NewSchedule([]Step{
		{At: 0, Tier: Tier{Name: "calm"}},
		{At: 10, Tier: Tier{Name: "busy", Hazard: 1}},
	})
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	s := NewScheduler(sched, 3, rand.New(rand.NewSource(1)))

	s.Tick(5)
	if !math.IsInf(s.Process(KindHazard).Next, 1) {
		t.Fatal("hazard should be disabled in the first tier")
	}

	s.Tick(10)
	p := s.Process(KindHazard)
	if math.IsInf(p.Next, 1) || p.Last != 10 || p.Active {
		t.Errorf("re-enabled process = %+v, want fresh interval from t=10", p)
	}
	if s.TierIndex() != 1 || s.Tier().Name != "busy" {
		t.Errorf("tier = %d %q, want 1 busy", s.TierIndex(), s.Tier().Name)
	}
}

func TestSchedulerPrefillResets(t *testing.T) {
	s := newTestScheduler(t, Tier{Gap: 2, Hazard: 0.5, Pickup: 4})
	plans := s.Prefill(30, 3, 0.5)

	if len(plans) != 30 {
		t.Fatalf("Prefill returned %d plans, want 30", len(plans))
	}
	hazards := 0
	for _, p := range plans {
		if len(p) != 3 {
			t.Fatalf("plan width = %d, want 3", len(p))
		}
		hazards += count(p, OutcomeHazard)
	}
	if hazards == 0 {
		t.Error("prefill over 15s at hazard interval 0.5 produced no hazards")
	}

	for k := KindGap; k < kindCount; k++ {
		p := s.Process(k)
		if p.Active || p.Last != 0 || p.Remaining != 0 {
			t.Errorf("%s process not reset after prefill: %+v", k, p)
		}
	}
}
