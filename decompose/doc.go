// Package decompose maps N independent output slots onto M workers in the
// three ways the benchmark compares.
//
// All strategies compute out[i] = fn(in[i], i) for every index and differ
// only in who computes what:
//
//   - Sequential: one loop, no goroutines. The baseline.
//   - Ranges: worker t owns the contiguous shard [t*N/M, (t+1)*N/M).
//   - Cyclic: worker t owns the strided set {t, t+M, t+2M, ...}.
//
// # Usage
//
//	in := work.RandomVector(100000, 42)
//	out := make([]float64, len(in))
//	err := decompose.Ranges(in, out, 4, func(x float64, i int) float64 {
//	    return work.Base(x)
//	})
//
// # Concurrency model
//
// Parallel strategies spawn their goroutines fresh on every call and block
// on a join barrier until all of them finish; there is no pool reuse, so the
// spawn and join overhead lands inside the caller's timing window on
// purpose. The index sets are disjoint by construction, which makes the
// output slots race-free without locks or atomics; the input is only read.
//
// # Failure semantics
//
// A panic inside a worker is recovered, wrapped with the worker id and a
// stack trace, and returned through the join barrier. There are no retries
// and no partial results: callers treat any error as fatal.
package decompose
