package work

import (
	"math"
	"testing"
)

func TestBase(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"zero", 0, 0},
		{"one", 1, 1.789},
		{"negative", -2, -3.578},
		{"fraction", 0.5, 0.8945},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Base(tt.x); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Base(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestHeavyScalesBase(t *testing.T) {
	xs := []float64{0, 1, 2.5, -3.75, 99.99}
	costs := []int{1, 2, 5, 10, 20}

	for _, x := range xs {
		for _, cost := range costs {
			want := float64(cost) * Base(x)
			got := Heavy(x, cost)
			tol := 1e-9 * math.Max(1, math.Abs(want))
			if math.Abs(got-want) > tol {
				t.Errorf("Heavy(%v, %d) = %v, want %v", x, cost, got, want)
			}
		}
	}
}

func TestHeavyEmptySum(t *testing.T) {
	for _, cost := range []int{0, -1, -100} {
		if got := Heavy(3.14, cost); got != 0 {
			t.Errorf("Heavy(3.14, %d) = %v, want 0", cost, got)
		}
	}
}

func TestRampTracksIndex(t *testing.T) {
	if got := Ramp(2, 0); got != 0 {
		t.Errorf("Ramp(2, 0) = %v, want 0", got)
	}

	for i := 1; i <= 50; i++ {
		want := float64(i) * Base(2)
		got := Ramp(2, i)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Ramp(2, %d) = %v, want %v", i, got, want)
		}
	}
}
