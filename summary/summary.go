// Package summary reduces a stream of values to count, mean, sample standard
// deviation, min and max in a single pass.
//
// Mean and variance use Welford's online algorithm: a running mean and a running
// sum of squared deviations (m2) are updated per value, so no values need to be
// retained and large samples do not lose precision the way sum-of-squares does.
package summary

import "math"

// Record is the result of summarizing a sample.
// Min is +Inf and Max is -Inf when Count is 0.
// StdDev is the sample standard deviation (n-1 denominator), or 0 when Count < 2.
//
// Mean and StdDev stay finite as long as the deviations from the running mean
// and their squares fit in a float64: roughly |x| < 1e154 for every value.
// Beyond that the update overflows, e.g. {1e308, -1e308} yields a -Inf mean
// and a NaN StdDev.
type Record struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Empty returns the Record of a sample without values.
func Empty() Record {
	return Record{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
}

// Summarize folds all values of sample into a Record.
// See Record for the range of values it summarizes without overflow.
func Summarize(sample []float64) Record {
	var acc Accumulator
	for _, x := range sample {
		acc.Observe(x)
	}
	return acc.Record()
}
