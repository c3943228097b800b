// Package harness runs a unit of work repeatedly under a wall clock and
// reports the measured samples. It is deliberately small: trials, an optional
// discarded warm-up, and optional settling between trials (pacing, forced
// collection) are all it knows about. What happens inside the timed window is
// the caller's business.
package harness

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTrials is the number of timed executions per measurement.
const DefaultTrials = 5

type config struct {
	trials int
	warmup bool
	gc     bool
	pacer  *rate.Limiter
}

// Option is a functional option for Measure.
type Option func(*config)

// WithTrials sets how many times the action is executed.
// Non-positive counts are ignored, keeping the default of DefaultTrials.
func WithTrials(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.trials = n
		}
	}
}

// WithWarmup controls whether the first trial's measurement is discarded.
// Warm-up is on unless disabled here, so one-time initialization costs stay
// out of the averaged samples.
func WithWarmup(enabled bool) Option {
	return func(cfg *config) {
		cfg.warmup = enabled
	}
}

// WithPacer gates each trial's start on a rate limiter, leaving a settling
// gap between timed executions. The wait happens outside the timed window.
// A nil limiter is ignored.
func WithPacer(l *rate.Limiter) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.pacer = l
		}
	}
}

// WithGC forces a garbage collection before every trial so collector debt
// from one trial is not billed to the next.
func WithGC() Option {
	return func(cfg *config) {
		cfg.gc = true
	}
}

// Result holds the measurements kept from one Measure call. When warm-up is
// enabled the first trial is executed but never recorded here.
type Result struct {
	Samples []time.Duration
	Total   time.Duration
}

// Measure executes action once per trial, timing each execution with the
// wall clock. The only error source is the pacer wait, which fails when the
// context is canceled; the action itself has no failure channel, so callers
// with fallible work capture their own error inside the closure.
func Measure(ctx context.Context, action func(), opts ...Option) (Result, error) {
	cfg := &config{
		trials: DefaultTrials,
		warmup: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	res := Result{Samples: make([]time.Duration, 0, cfg.trials)}

	for trial := range cfg.trials {
		if cfg.pacer != nil {
			if err := cfg.pacer.Wait(ctx); err != nil {
				return Result{}, fmt.Errorf("waiting for trial pacer: %w", err)
			}
		} else if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if cfg.gc {
			runtime.GC()
		}

		start := time.Now()
		action()
		elapsed := time.Since(start)

		if trial == 0 && cfg.warmup {
			continue
		}

		res.Samples = append(res.Samples, elapsed)
		res.Total += elapsed
	}

	return res, nil
}

// Mean returns the arithmetic mean of the kept samples. The divisor clamps
// to 1 when nothing was kept, so the degenerate single-trial-with-warm-up
// case reports the raw total instead of dividing by zero.
func (r Result) Mean() time.Duration {
	return r.Total / time.Duration(max(len(r.Samples), 1))
}

// Millis returns the mean in milliseconds, the unit the reports print.
func (r Result) Millis() float64 {
	return float64(r.Mean()) / float64(time.Millisecond)
}
