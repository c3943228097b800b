package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/utkarsh5026/parsweep/decompose"
	"github.com/utkarsh5026/parsweep/harness"
	"github.com/utkarsh5026/parsweep/internal/cpu"
	"github.com/utkarsh5026/parsweep/work"
)

// uniform applies the base transform regardless of position.
func uniform(x float64, _ int) float64 {
	return work.Base(x)
}

// scaled builds a transform costing k evaluations of the base op per element.
func scaled(k int) decompose.ElementFunc {
	return func(x float64, _ int) float64 {
		return work.Heavy(x, k)
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// speedup is the sequential-to-parallel time ratio; values above 1 mean the
// parallel run won. A zero parallel mean (possible on coarse clocks with tiny
// vectors) reports 0 rather than dividing by zero.
func speedup(seq, par harness.Result) float64 {
	p := par.Mean()
	if p <= 0 {
		return 0
	}
	return float64(seq.Mean()) / float64(p)
}

func (e *Experiment) harnessOpts() []harness.Option {
	opts := []harness.Option{harness.WithTrials(e.cfg.Trials)}
	if e.cfg.NoWarmup {
		opts = append(opts, harness.WithWarmup(false))
	}
	if e.pacer != nil {
		opts = append(opts, harness.WithPacer(e.pacer))
	}
	if e.cfg.GC {
		opts = append(opts, harness.WithGC())
	}
	return opts
}

func (e *Experiment) strategyOpts() []decompose.Option {
	if e.cfg.Pin {
		return []decompose.Option{decompose.WithPinning()}
	}
	return nil
}

// measure times one strategy invocation under the harness. The output vector
// is zeroed inside the timed action so no trial reads results left over from
// the previous one; the cost is the same for every strategy, so comparisons
// are unaffected. A strategy error is fatal to the phase.
func (e *Experiment) measure(ctx context.Context, out []float64, run func() error) (harness.Result, error) {
	var runErr error
	res, err := harness.Measure(ctx, func() {
		work.ZeroVector(out)
		if err := run(); err != nil && runErr == nil {
			runErr = err
		}
	}, e.harnessOpts()...)
	if err != nil {
		return harness.Result{}, err
	}
	if runErr != nil {
		return harness.Result{}, runErr
	}
	return res, nil
}

// PhaseA demonstrates the three strategies head to head on the uniform
// workload at N=100000, with the worker count capped at four or the machine's
// available parallelism, whichever is smaller.
func (e *Experiment) PhaseA(ctx context.Context) error {
	workers := min(demoWorkerCap, cpu.Available())
	in := work.RandomVector(demoSize, e.cfg.Seed)
	out := make([]float64, demoSize)

	runs := []struct {
		strategy string
		workers  int
		run      func() error
	}{
		{"Sequential", 1, func() error {
			return decompose.Sequential(in, out, uniform)
		}},
		{"Ranges", workers, func() error {
			return decompose.Ranges(in, out, workers, uniform, e.strategyOpts()...)
		}},
		{"Cyclic", workers, func() error {
			return decompose.Cyclic(in, out, workers, uniform, e.strategyOpts()...)
		}},
	}

	results := make([]DemoResult, 0, len(runs))
	for _, r := range runs {
		res, err := e.measure(ctx, out, r.run)
		if err != nil {
			return fmt.Errorf("%s: %w", r.strategy, err)
		}

		s := harness.Summarize(res.Samples)
		results = append(results, DemoResult{
			Strategy: r.strategy,
			Workers:  r.workers,
			MeanMS:   millis(s.Mean),
			MinMS:    millis(s.Min),
			MaxMS:    millis(s.Max),
			StdDevMS: millis(s.StdDev),
		})
	}

	e.report.Demo = results
	if e.silent() {
		return nil
	}

	e.sectionHeader(
		fmt.Sprintf("PHASE A: STRATEGY DEMO (N=%s, M=%d, uniform cost)", formatNumber(demoSize), workers),
		"Sequential vs contiguous ranges vs cyclic on the base transform.")
	e.renderDemoTable(results)
	return nil
}

// PhaseB sweeps vector size against worker count on the uniform workload and
// prints CSV rows comparing the sequential baseline to range partitioning.
func (e *Experiment) PhaseB(ctx context.Context) error {
	rows, err := e.runSizeSweep(ctx, sweepSizes, sweepWorkers)
	if err != nil {
		return err
	}

	e.report.Sweep = rows
	if e.silent() {
		return nil
	}

	e.sectionHeader("PHASE B: SIZE × WORKERS SWEEP (uniform cost)",
		"Speedup_range = T_seq / T_par_range; above 1 the parallel run won.")
	e.renderSweepCSV(rows)
	return nil
}

func (e *Experiment) runSizeSweep(ctx context.Context, sizes, workers []int) ([]SweepRow, error) {
	bar := e.progressBar(len(sizes)*len(workers), "Sweeping N × M")
	rows := make([]SweepRow, 0, len(sizes)*len(workers))

	for _, n := range sizes {
		in := work.RandomVector(n, e.cfg.Seed)
		out := make([]float64, n)

		seq, err := e.measure(ctx, out, func() error {
			return decompose.Sequential(in, out, uniform)
		})
		if err != nil {
			return nil, fmt.Errorf("sequential N=%d: %w", n, err)
		}

		for _, m := range workers {
			par, err := e.measure(ctx, out, func() error {
				return decompose.Ranges(in, out, m, uniform, e.strategyOpts()...)
			})
			if err != nil {
				return nil, fmt.Errorf("ranges N=%d M=%d: %w", n, m, err)
			}
			barAdd(bar)

			rows = append(rows, SweepRow{
				Size:    n,
				Workers: m,
				SeqMS:   seq.Millis(),
				RangeMS: par.Millis(),
				Speedup: speedup(seq, par),
			})
		}
	}

	barFinish(bar)
	return rows, nil
}

// PhaseC holds the size fixed and raises the per-element cost factor,
// comparing the sequential baseline to range partitioning at several worker
// counts. The point is to show how much per-element work it takes before
// spawning goroutines pays for itself.
func (e *Experiment) PhaseC(ctx context.Context) error {
	rows, err := e.runCostSweep(ctx, demoSize, costFactors, costWorkers)
	if err != nil {
		return err
	}

	e.report.CostWorkers = costWorkers
	e.report.Cost = rows
	if e.silent() {
		return nil
	}

	e.sectionHeader(
		fmt.Sprintf("PHASE C: PER-ELEMENT COST SWEEP (N=%s)", formatNumber(demoSize)),
		"Sequential vs range partitioning as each element's cost factor K grows.")
	e.renderCostCSV(rows, costWorkers)
	return nil
}

func (e *Experiment) runCostSweep(ctx context.Context, n int, factors, workers []int) ([]CostRow, error) {
	in := work.RandomVector(n, e.cfg.Seed)
	out := make([]float64, n)

	bar := e.progressBar(len(factors)*(len(workers)+1), "Sweeping cost factors")
	rows := make([]CostRow, 0, len(factors))

	for _, k := range factors {
		fn := scaled(k)

		seq, err := e.measure(ctx, out, func() error {
			return decompose.Sequential(in, out, fn)
		})
		if err != nil {
			return nil, fmt.Errorf("sequential K=%d: %w", k, err)
		}
		barAdd(bar)

		row := CostRow{Cost: k, SeqMS: seq.Millis(), RangeMS: make([]float64, 0, len(workers))}
		for _, m := range workers {
			par, err := e.measure(ctx, out, func() error {
				return decompose.Ranges(in, out, m, fn, e.strategyOpts()...)
			})
			if err != nil {
				return nil, fmt.Errorf("ranges K=%d M=%d: %w", k, m, err)
			}
			barAdd(bar)

			row.RangeMS = append(row.RangeMS, par.Millis())
		}
		rows = append(rows, row)
	}

	barFinish(bar)
	return rows, nil
}

// PhaseD runs the ramp workload, where an element's cost grows with its
// index, and compares how the two parallel strategies absorb the imbalance.
// Ranges hands the expensive tail to its last worker while cyclic interleaves
// it across all of them, so cyclic should finish sooner.
func (e *Experiment) PhaseD(ctx context.Context) error {
	rows, err := e.runBalanceSweep(ctx, demoSize, costWorkers)
	if err != nil {
		return err
	}

	e.report.Balance = rows
	if e.silent() {
		return nil
	}

	e.sectionHeader(
		fmt.Sprintf("PHASE D: LOAD IMBALANCE (N=%s, ramp cost)", formatNumber(demoSize)),
		"Element i costs i base ops; contiguous ranges pile that onto the last worker.")
	e.renderBalanceRows(rows)
	return nil
}

func (e *Experiment) runBalanceSweep(ctx context.Context, n int, workers []int) ([]BalanceRow, error) {
	in := work.RandomVector(n, e.cfg.Seed)
	out := make([]float64, n)

	bar := e.progressBar(len(workers)*2, "Comparing ranges vs cyclic")
	rows := make([]BalanceRow, 0, len(workers))

	for _, m := range workers {
		ranged, err := e.measure(ctx, out, func() error {
			return decompose.Ranges(in, out, m, work.Ramp, e.strategyOpts()...)
		})
		if err != nil {
			return nil, fmt.Errorf("ranges M=%d: %w", m, err)
		}
		barAdd(bar)

		cyclic, err := e.measure(ctx, out, func() error {
			return decompose.Cyclic(in, out, m, work.Ramp, e.strategyOpts()...)
		})
		if err != nil {
			return nil, fmt.Errorf("cyclic M=%d: %w", m, err)
		}
		barAdd(bar)

		rows = append(rows, BalanceRow{
			Workers:  m,
			RangeMS:  ranged.Millis(),
			CyclicMS: cyclic.Millis(),
		})
	}

	barFinish(bar)
	return rows, nil
}
