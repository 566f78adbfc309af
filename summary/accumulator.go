package summary

import "math"

// Accumulator keeps the running state of a summary.
// The zero value is an empty accumulator, ready to use.
// not concurrency-safe: give each unit of work its own Accumulator.
type Accumulator struct {
	count int
	mean  float64
	m2    float64
	min   float64
	max   float64
}

// Observe folds x into the running state.
// delta*(x-mean) overflows to +Inf once values reach about 1e154 in magnitude,
// and x-mean itself overflows for values of opposite sign near MaxFloat64.
func (a *Accumulator) Observe(x float64) {
	if a.count == 0 {
		a.min = x
		a.max = x
	}
	a.count++
	delta := x - a.mean
	a.mean += delta / float64(a.count)
	// the second factor must use the updated mean
	a.m2 += delta * (x - a.mean)

	if x < a.min {
		a.min = x
	}
	if x > a.max {
		a.max = x
	}
}

// Merge folds the state of b into a, as if every value observed by b had been
// observed by a. Mean and m2 are combined with the pairwise update of Chan et al.
func (a *Accumulator) Merge(b Accumulator) {
	if b.count == 0 {
		return
	}
	if a.count == 0 {
		*a = b
		return
	}
	n := a.count + b.count
	delta := b.mean - a.mean
	a.mean += delta * float64(b.count) / float64(n)
	a.m2 += b.m2 + delta*delta*float64(a.count)*float64(b.count)/float64(n)
	a.count = n
	if b.min < a.min {
		a.min = b.min
	}
	if b.max > a.max {
		a.max = b.max
	}
}

func (a *Accumulator) Count() int {
	return a.count
}

// Mean returns the running mean, 0 if nothing was observed.
func (a *Accumulator) Mean() float64 {
	return a.mean
}

// Variance returns the sample variance m2/(n-1), or 0 for fewer than 2 values.
func (a *Accumulator) Variance() float64 {
	if a.count < 2 {
		return 0
	}
	return a.m2 / float64(a.count-1)
}

func (a *Accumulator) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// Min returns the smallest observed value, +Inf if nothing was observed.
func (a *Accumulator) Min() float64 {
	if a.count == 0 {
		return math.Inf(1)
	}
	return a.min
}

// Max returns the largest observed value, -Inf if nothing was observed.
func (a *Accumulator) Max() float64 {
	if a.count == 0 {
		return math.Inf(-1)
	}
	return a.max
}

// Record returns a snapshot of the running state.
func (a *Accumulator) Record() Record {
	return Record{
		Count:  a.count,
		Mean:   a.mean,
		StdDev: a.StdDev(),
		Min:    a.Min(),
		Max:    a.Max(),
	}
}
