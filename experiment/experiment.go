// Package experiment drives the benchmark's four phases and renders their
// reports.
//
// Each phase pairs the element operations from package work with the
// decomposition strategies from package decompose and times them through
// package harness:
//
//   - Phase A: one demonstration comparing all three strategies head to head.
//   - Phase B: vector size × worker count sweep, sequential vs ranges, CSV.
//   - Phase C: per-element cost sweep at fixed size, sequential vs ranges, CSV.
//   - Phase D: ramp workload exposing load imbalance, ranges vs cyclic.
//
// Phases are independent: none reads another's output, and any subset can be
// selected. Every failure is fatal to the run; a benchmark with a dead worker
// has nothing worth printing.
package experiment

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/utkarsh5026/parsweep/internal/cpu"
)

// Defaults applied by New when Config leaves them zero.
const (
	DefaultTrials = 5
	DefaultSeed   = 42
)

// Parameter tables for the sweeps. These are the only global state the
// benchmark carries; everything else is derived per phase.
var (
	sweepSizes   = []int{10, 100, 1000, 100000}
	sweepWorkers = []int{2, 3, 4, 5, 10}
	costFactors  = []int{1, 2, 5, 10, 20}
	costWorkers  = []int{2, 4, 8}
)

const (
	demoSize      = 100000
	demoWorkerCap = 4
)

// Config controls a run. The zero value is the standard configuration: five
// trials with the first discarded, seed 42, all phases, plain text on stdout.
type Config struct {
	Trials   int           // timed trials per measurement; non-positive means DefaultTrials
	NoWarmup bool          // keep the first trial instead of discarding it
	Seed     int64         // input vector seed; 0 means DefaultSeed
	Phases   string        // "all" or a subset like "bd"; empty means all
	Cooldown time.Duration // minimum gap between timed trials; 0 disables pacing
	GC       bool          // force a collection before every timed trial
	Pin      bool          // pin worker goroutines to CPU cores
	JSON     bool          // emit a JSON report instead of the rendered one
	Progress bool          // render sweep progress bars on stderr
	Out      io.Writer     // report destination; nil means os.Stdout
}

// Experiment binds a normalized Config to the shared trial pacer and the
// report being accumulated.
type Experiment struct {
	cfg    Config
	out    io.Writer
	pacer  *rate.Limiter
	report Report
}

// New normalizes cfg and returns an Experiment ready to Run.
func New(cfg Config) *Experiment {
	if cfg.Trials <= 0 {
		cfg.Trials = DefaultTrials
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if cfg.Phases == "" {
		cfg.Phases = "all"
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	e := &Experiment{cfg: cfg, out: cfg.Out}
	if cfg.Cooldown > 0 {
		e.pacer = rate.NewLimiter(rate.Every(cfg.Cooldown), 1)
	}

	e.report = Report{
		Parallelism: cpu.Available(),
		GoVersion:   runtime.Version(),
		Trials:      cfg.Trials,
		Warmup:      !cfg.NoWarmup,
		Seed:        cfg.Seed,
	}
	return e
}

type phase struct {
	id   string
	name string
	run  func(context.Context) error
}

func (e *Experiment) phases() []phase {
	return []phase{
		{"a", "strategy demo", e.PhaseA},
		{"b", "size sweep", e.PhaseB},
		{"c", "cost sweep", e.PhaseC},
		{"d", "load imbalance", e.PhaseD},
	}
}

// selectPhases resolves the phase spec into the phases to run, always in
// canonical a-d order regardless of the order given.
func (e *Experiment) selectPhases(spec string) ([]phase, error) {
	all := e.phases()
	if strings.EqualFold(spec, "all") {
		return all, nil
	}

	spec = strings.ToLower(spec)
	for _, r := range spec {
		if !strings.ContainsRune("abcd", r) {
			return nil, fmt.Errorf("unknown phase %q (valid: a-d or \"all\")", r)
		}
	}

	picked := make([]phase, 0, len(all))
	for _, ph := range all {
		if strings.Contains(spec, ph.id) {
			picked = append(picked, ph)
		}
	}
	return picked, nil
}

// silent reports whether the rendered output is suppressed. JSON mode prints
// only the final document so stdout stays parseable.
func (e *Experiment) silent() bool {
	return e.cfg.JSON
}

// Run executes the selected phases in order and emits the final report.
func (e *Experiment) Run(ctx context.Context) error {
	phases, err := e.selectPhases(e.cfg.Phases)
	if err != nil {
		return err
	}

	start := time.Now()
	if !e.silent() {
		e.printBanner()
		e.printConfig(len(phases))
	}

	for _, ph := range phases {
		if err := ph.run(ctx); err != nil {
			return fmt.Errorf("phase %s (%s): %w", strings.ToUpper(ph.id), ph.name, err)
		}
	}

	if e.cfg.JSON {
		return e.outputJSON()
	}

	fmt.Fprintln(e.out)
	colorPrintf(e.out, green, "✅ Completed %d phase(s) in %v\n", len(phases), time.Since(start).Round(time.Millisecond))
	return nil
}
