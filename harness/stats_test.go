package harness

import (
	"math"
	"testing"
	"time"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestSummarizeKnownSamples(t *testing.T) {
	samples := []time.Duration{ms(4), ms(1), ms(3), ms(2), ms(5)}

	s := Summarize(samples)

	if s.Min != ms(1) {
		t.Errorf("Min = %v, want %v", s.Min, ms(1))
	}
	if s.Max != ms(5) {
		t.Errorf("Max = %v, want %v", s.Max, ms(5))
	}
	if s.Median != ms(3) {
		t.Errorf("Median = %v, want %v", s.Median, ms(3))
	}
	if s.Mean != ms(3) {
		t.Errorf("Mean = %v, want %v", s.Mean, ms(3))
	}

	// Population variance of {1..5} ms around 3 ms is 2 ms².
	want := time.Duration(math.Sqrt(2) * float64(time.Millisecond))
	if diff := s.StdDev - want; diff < -time.Microsecond || diff > time.Microsecond {
		t.Errorf("StdDev = %v, want about %v", s.StdDev, want)
	}
}

func TestSummarizeEvenCountUsesUpperMedian(t *testing.T) {
	samples := []time.Duration{ms(1), ms(2), ms(3), ms(4)}

	if s := Summarize(samples); s.Median != ms(3) {
		t.Errorf("Median = %v, want %v", s.Median, ms(3))
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("expected zero summary for empty samples, got %+v", s)
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	s := Summarize([]time.Duration{ms(7)})

	if s.Min != ms(7) || s.Max != ms(7) || s.Median != ms(7) || s.Mean != ms(7) {
		t.Errorf("single-sample summary should repeat the sample, got %+v", s)
	}
	if s.StdDev != 0 {
		t.Errorf("StdDev = %v, want 0", s.StdDev)
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	samples := []time.Duration{ms(9), ms(1), ms(5)}

	Summarize(samples)

	if samples[0] != ms(9) || samples[1] != ms(1) || samples[2] != ms(5) {
		t.Errorf("input order changed: %v", samples)
	}
}
