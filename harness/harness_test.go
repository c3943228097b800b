package harness

import (
	"context"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestMeasureCallCountWithWarmup(t *testing.T) {
	calls := 0
	res, err := Measure(context.Background(), func() { calls++ })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 5 {
		t.Errorf("expected 5 calls, got %d", calls)
	}
	if len(res.Samples) != 4 {
		t.Errorf("expected 4 kept samples, got %d", len(res.Samples))
	}
}

func TestMeasureCallCountWithoutWarmup(t *testing.T) {
	calls := 0
	res, err := Measure(context.Background(), func() { calls++ }, WithWarmup(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 5 {
		t.Errorf("expected 5 calls, got %d", calls)
	}
	if len(res.Samples) != 5 {
		t.Errorf("expected 5 kept samples, got %d", len(res.Samples))
	}
}

func TestMeasureSingleTrialDegenerateCase(t *testing.T) {
	calls := 0
	res, err := Measure(context.Background(), func() { calls++ }, WithTrials(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if len(res.Samples) != 0 {
		t.Errorf("expected 0 kept samples, got %d", len(res.Samples))
	}
	if res.Mean() != 0 {
		t.Errorf("expected zero mean for empty sample set, got %v", res.Mean())
	}
	if res.Millis() != 0 {
		t.Errorf("expected zero millis for empty sample set, got %v", res.Millis())
	}
}

func TestWithTrialsIgnoresBadCounts(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		calls := 0
		if _, err := Measure(context.Background(), func() { calls++ }, WithTrials(n)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != DefaultTrials {
			t.Errorf("WithTrials(%d): expected default %d calls, got %d", n, DefaultTrials, calls)
		}
	}
}

func TestMeasureTotalsMatchSamples(t *testing.T) {
	res, err := Measure(context.Background(), func() {
		time.Sleep(2 * time.Millisecond)
	}, WithTrials(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Samples) != 2 {
		t.Fatalf("expected 2 kept samples, got %d", len(res.Samples))
	}

	var sum time.Duration
	for _, s := range res.Samples {
		if s < 2*time.Millisecond {
			t.Errorf("sample %v shorter than the slept duration", s)
		}
		sum += s
	}
	if sum != res.Total {
		t.Errorf("sample sum %v does not match total %v", sum, res.Total)
	}
	if res.Mean() < 2*time.Millisecond {
		t.Errorf("mean %v shorter than the slept duration", res.Mean())
	}
}

func TestMeasurePacerSpacesTrials(t *testing.T) {
	interval := 50 * time.Millisecond
	pacer := rate.NewLimiter(rate.Every(interval), 1)

	start := time.Now()
	_, err := Measure(context.Background(), func() {},
		WithTrials(3),
		WithWarmup(false),
		WithPacer(pacer),
	)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First token is available immediately; the remaining two trials each
	// wait out one interval.
	if expected := 2 * interval; elapsed < expected {
		t.Errorf("expected at least %v elapsed with pacing, got %v", expected, elapsed)
	}
}

func TestMeasureCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	if _, err := Measure(ctx, func() { calls++ }); err == nil {
		t.Fatal("expected error from canceled context")
	}
	if calls != 0 {
		t.Errorf("expected no calls after cancellation, got %d", calls)
	}
}

func TestMeasureCanceledContextWithPacer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pacer := rate.NewLimiter(rate.Every(time.Millisecond), 1)
	calls := 0
	if _, err := Measure(ctx, func() { calls++ }, WithPacer(pacer)); err == nil {
		t.Fatal("expected error from canceled context")
	}
	if calls != 0 {
		t.Errorf("expected no calls after cancellation, got %d", calls)
	}
}

func TestMeasureWithGC(t *testing.T) {
	calls := 0
	res, err := Measure(context.Background(), func() { calls++ }, WithTrials(2), WithGC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
	if len(res.Samples) != 1 {
		t.Errorf("expected 1 kept sample, got %d", len(res.Samples))
	}
}

func TestWithPacerIgnoresNil(t *testing.T) {
	calls := 0
	if _, err := Measure(context.Background(), func() { calls++ }, WithTrials(2), WithPacer(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}
