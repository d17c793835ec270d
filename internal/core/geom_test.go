package core

import (
	"math"
	"testing"
)

func TestBox3Intersects(t *testing.T) {
	unit := BoxFromCenter(V3(0, 0, 0), V3(1, 1, 1))

	tests := []struct {
		name     string
		a, b     Box3
		expected bool
	}{
		{
			name:     "identical boxes",
			a:        unit,
			b:        unit,
			expected: true,
		},
		{
			name:     "overlapping on all axes",
			a:        unit,
			b:        BoxFromCenter(V3(0.5, 0.5, 0.5), V3(1, 1, 1)),
			expected: true,
		},
		{
			name:     "touching faces",
			a:        unit,
			b:        BoxFromCenter(V3(1, 0, 0), V3(1, 1, 1)),
			expected: true,
		},
		{
			name:     "separated on x",
			a:        unit,
			b:        BoxFromCenter(V3(2, 0, 0), V3(1, 1, 1)),
			expected: false,
		},
		{
			name:     "separated on y only",
			a:        unit,
			b:        BoxFromCenter(V3(0, 1.5, 0), V3(1, 1, 1)),
			expected: false,
		},
		{
			name:     "separated on z only",
			a:        unit,
			b:        BoxFromCenter(V3(0, 0, -3), V3(1, 1, 1)),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxFromCenter(V3(0, 0, 0), V3(10, 10, 10)),
			b:        unit,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBox3CenterSize(t *testing.T) {
	b := BoxFromCenter(V3(1, 2, 3), V3(2, 4, 6))

	if b.Center() != V3(1, 2, 3) {
		t.Errorf("Center() = %+v, expected (1, 2, 3)", b.Center())
	}
	if b.Size() != V3(2, 4, 6) {
		t.Errorf("Size() = %+v, expected (2, 4, 6)", b.Size())
	}
	if !b.Contains(V3(0, 0, 0)) {
		t.Error("Contains() should include the min corner")
	}
	if b.Contains(V3(2.5, 2, 3)) {
		t.Error("Contains() should exclude points outside x range")
	}
}

func TestVec3(t *testing.T) {
	v := V3(3, 4, 0)
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}
	if got := v.Add(V3(1, 1, 1)).Sub(V3(1, 1, 1)); got != v {
		t.Errorf("Add/Sub round trip = %+v, expected %+v", got, v)
	}
	if got := v.Mul(V3(2, 0.5, 1)); got != V3(6, 2, 0) {
		t.Errorf("Mul() = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.2); math.Abs(got-2) > 1e-9 {
		t.Errorf("Lerp(0, 10, 0.2) = %f, expected 2", got)
	}
	if got := ClampF(-1, 0, 1); got != 0 {
		t.Errorf("ClampF(-1, 0, 1) = %f, expected 0", got)
	}
}
