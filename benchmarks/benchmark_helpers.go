package benchmarks

import (
	"testing"

	"github.com/utkarsh5026/parsweep/decompose"
	"github.com/utkarsh5026/parsweep/work"
)

const benchSeed = 42

// strategyConfig defines a benchmark configuration for a decomposition
// strategy. Sequential ignores the worker count.
type strategyConfig struct {
	name string
	run  func(in, out []float64, workers int, fn decompose.ElementFunc) error
}

// getAllStrategies returns every decomposition strategy for benchmarking.
func getAllStrategies() []strategyConfig {
	return append([]strategyConfig{
		{
			name: "Sequential",
			run: func(in, out []float64, _ int, fn decompose.ElementFunc) error {
				return decompose.Sequential(in, out, fn)
			},
		},
	}, getParallelStrategies()...)
}

// getParallelStrategies returns only the strategies that spawn workers.
func getParallelStrategies() []strategyConfig {
	return []strategyConfig{
		{
			name: "Ranges",
			run: func(in, out []float64, workers int, fn decompose.ElementFunc) error {
				return decompose.Ranges(in, out, workers, fn)
			},
		},
		{
			name: "Cyclic",
			run: func(in, out []float64, workers int, fn decompose.ElementFunc) error {
				return decompose.Cyclic(in, out, workers, fn)
			},
		},
	}
}

// runStrategyBenchmark runs a benchmark function for all strategies
func runStrategyBenchmark(b *testing.B, strategies []strategyConfig, benchFunc func(b *testing.B, s strategyConfig)) {
	for _, strategy := range strategies {
		b.Run(strategy.name, func(b *testing.B) {
			benchFunc(b, strategy)
		})
	}
}

// makeVectors builds a seeded input vector and a matching output buffer.
func makeVectors(n int) (in, out []float64) {
	return work.RandomVector(n, benchSeed), make([]float64, n)
}

// reportThroughput reports elements processed per second for one benchmark.
func reportThroughput(b *testing.B, elements int) {
	nsPerOp := float64(b.Elapsed().Nanoseconds()) / float64(b.N)
	if nsPerOp <= 0 {
		return
	}
	b.ReportMetric(float64(elements)/nsPerOp*1e9, "elems/sec")
}

// =============================================================================
// Benchmark Workload Generators
// =============================================================================

// uniformWork applies the base transform: every element costs the same.
func uniformWork(x float64, _ int) float64 {
	return work.Base(x)
}

// scaledWork makes every element cost factor evaluations of the base op.
func scaledWork(factor int) decompose.ElementFunc {
	return func(x float64, _ int) float64 {
		return work.Heavy(x, factor)
	}
}

// rampWork prices element i at i base ops, the deliberately imbalanced shape.
func rampWork(x float64, i int) float64 {
	return work.Ramp(x, i)
}
