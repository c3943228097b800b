// Package work provides the element operations the benchmark measures and
// the seeded input vectors they run over. Three operations cover the
// workload shapes under study: a cheap fixed-cost transform, a repeated
// variant with an adjustable cost factor, and an index-proportional variant
// that deliberately skews cost toward the tail of the vector.
package work

// Factor is the multiplier applied by Base.
const Factor = 1.789

// Base is the cheapest unit of work: a single multiplication.
func Base(x float64) float64 {
	return x * Factor
}

// Heavy repeats Base cost times and sums the results, simulating an element
// that is cost times more expensive to process than the base transform.
// cost <= 0 is an empty sum and yields 0.
func Heavy(x float64, cost int) float64 {
	var sum float64
	for range cost {
		sum += Base(x)
	}
	return sum
}

// Ramp prices an element by its position: element i costs i evaluations of
// Base, so work grows linearly along the vector. This is the imbalance
// generator used to compare decomposition strategies under skewed load.
func Ramp(x float64, i int) float64 {
	return Heavy(x, i)
}
