package harness

import (
	"math"
	"slices"
	"time"
)

// Summary holds sample statistics over one measurement's samples.
type Summary struct {
	Min    time.Duration
	Median time.Duration
	Mean   time.Duration
	Max    time.Duration
	StdDev time.Duration
}

// Summarize computes min, median, mean, max, and population standard
// deviation over a sorted copy of samples. An empty sample set yields the
// zero Summary.
func Summarize(samples []time.Duration) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var sum time.Duration
	for _, s := range sorted {
		sum += s
	}
	mean := sum / time.Duration(len(sorted))

	var variance float64
	for _, s := range sorted {
		diff := float64(s - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(sorted))))

	return Summary{
		Min:    sorted[0],
		Median: sorted[len(sorted)/2],
		Mean:   mean,
		Max:    sorted[len(sorted)-1],
		StdDev: stddev,
	}
}
