package track

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testTiers = []Step{
	{At: 0, Tier: Tier{Name: "warmup", Gap: 7, Hazard: 2.5, Pickup: 20}},
	{At: 30, Tier: Tier{Name: "cruise", Gap: 5, Hazard: 1.8, Pickup: 16}},
	{At: 75, Tier: Tier{Name: "rush", Gap: 3.5, Hazard: 1.2, Pickup: 12}},
	{At: 150, Tier: Tier{Name: "frenzy", Gap: 2.5, Hazard: 0.8, Pickup: 10}},
}

func TestNewScheduleErrors(t *testing.T) {
	if _, err := NewSchedule(nil); !errors.Is(err, ErrEmptySchedule) {
		t.Errorf("empty schedule: got %v, want ErrEmptySchedule", err)
	}

	unsorted := []Step{testTiers[1], testTiers[0]}
	if _, err := NewSchedule(unsorted); !errors.Is(err, ErrUnsortedSchedule) {
		t.Errorf("unsorted schedule: got %v, want ErrUnsortedSchedule", err)
	}
}

func TestScheduleTierFor(t *testing.T) {
	s, err := NewSchedule(testTiers)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}

	tests := []struct {
		elapsed float64
		want    string
	}{
		{-5, "warmup"},
		{0, "warmup"},
		{29.99, "warmup"},
		{30, "cruise"},
		{74, "cruise"},
		{75, "rush"},
		{149.9, "rush"},
		{150, "frenzy"},
		{1e6, "frenzy"},
	}

	for _, tt := range tests {
		if got := s.TierFor(tt.elapsed).Name; got != tt.want {
			t.Errorf("TierFor(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestScheduleStepsCopy(t *testing.T) {
	s, err := NewSchedule(testTiers)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	steps := s.Steps()
	steps[0].Tier.Name = "mutated"

	if diff := cmp.Diff(testTiers, s.Steps()); diff != "" {
		t.Errorf("schedule steps changed through copy (-want +got):\n%s", diff)
	}
}

func TestSampleMean(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 200000

	for _, step := range testTiers {
		for _, avg := range []float64{step.Tier.Gap, step.Tier.Hazard, step.Tier.Pickup} {
			sum := 0.0
			for i := 0; i < n; i++ {
				v := Sample(rng, avg)
				if v < 0 {
					t.Fatalf("Sample(%v) returned negative %v", avg, v)
				}
				sum += v
			}
			mean := sum / n
			if math.Abs(mean-avg)/avg > 0.02 {
				t.Errorf("tier %s: mean of Sample(%v) = %v, outside 2%%", step.Tier.Name, avg, mean)
			}
		}
	}
}

func TestSampleDisabled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, avg := range []float64{0, -1} {
		if v := Sample(rng, avg); !math.IsInf(v, 1) {
			t.Errorf("Sample(%v) = %v, want +Inf", avg, v)
		}
	}
}
