package decompose

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/parsweep/internal/cpu"
)

// ElementFunc transforms one input element. It receives the element's value
// and its index so implementations can price work by position.
type ElementFunc func(x float64, i int) float64

var (
	// ErrLengthMismatch reports input and output vectors of different lengths.
	ErrLengthMismatch = errors.New("input and output lengths differ")

	// ErrInvalidWorkers reports a worker count below 1.
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
)

// Option is a functional option for the parallel strategies.
type Option func(*config)

type config struct {
	pin bool
}

// WithPinning pins each worker goroutine to a CPU core for the duration of
// the call, which reduces scheduler migration noise in timing runs.
// If not specified, workers migrate freely.
func WithPinning() Option {
	return func(cfg *config) {
		cfg.pin = true
	}
}

// Sequential fills out in a single ascending loop with no goroutines.
// It is the baseline every parallel strategy is compared against.
func Sequential(in, out []float64, fn ElementFunc) error {
	if len(in) != len(out) {
		return ErrLengthMismatch
	}

	for i, x := range in {
		out[i] = fn(x, i)
	}
	return nil
}

// Ranges splits the index space into workers contiguous shards, one
// goroutine per shard, and blocks until all of them finish. More workers
// than elements is legal: trailing shards come out empty. Goroutines are
// created and joined inside the call, so their overhead is part of what
// callers measure.
func Ranges(in, out []float64, workers int, fn ElementFunc, opts ...Option) error {
	cfg, err := validate(in, out, workers, opts)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for t := range workers {
		start, end := bounds(t, workers, len(in))
		g.Go(func() error {
			return runShard(t, cfg, func() {
				for i := start; i < end; i++ {
					out[i] = fn(in[i], i)
				}
			})
		})
	}
	return g.Wait()
}

// Cyclic assigns index i to worker i mod workers, one goroutine per worker,
// and blocks until all of them finish. The strided sets are disjoint residue
// classes, so no two workers touch the same slot. Interleaving spreads
// expensive tail elements across all workers, which is what makes it worth
// comparing against Ranges under skewed load.
func Cyclic(in, out []float64, workers int, fn ElementFunc, opts ...Option) error {
	cfg, err := validate(in, out, workers, opts)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for t := range workers {
		g.Go(func() error {
			return runShard(t, cfg, func() {
				for i := t; i < len(in); i += workers {
					out[i] = fn(in[i], i)
				}
			})
		})
	}
	return g.Wait()
}

func validate(in, out []float64, workers int, opts []Option) (*config, error) {
	if len(in) != len(out) {
		return nil, ErrLengthMismatch
	}
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg, nil
}

// runShard executes one worker's loop, converting a panic into an error so a
// failing worker surfaces through the join barrier instead of killing the
// process.
func runShard(worker int, cfg *config, body func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("worker %d panic: %v\nstack trace:\n%s", worker, r, buf[:n])
		}
	}()

	if cfg.pin {
		cleanup := cpu.PinWorker(worker)
		defer cleanup()
	}

	body()
	return nil
}
