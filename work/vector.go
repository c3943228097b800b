package work

import "math/rand"

// RandomVector builds a length-n input vector from a seeded pseudo-random
// source. The same seed always produces the same vector, which keeps runs
// reproducible across machines. Values land in [0, 100).
func RandomVector(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducibility matters here, crypto rand does not
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64() * 100
	}
	return v
}

// ZeroVector clears v in place so a timed run never reads results left over
// from the previous one.
func ZeroVector(v []float64) {
	clear(v)
}
