// Package rng draws uniform samples from interchangeable random sources.
//
// Each Variant is a distinct strategy for obtaining randomness. They are kept
// apart on purpose: comparing their behavior over the same sample sizes is the
// point of the tool.
package rng

import (
	"fmt"

	"github.com/grafana/rngstats/stats"
)

func valuesCounter(v Variant) *stats.Counter64 {
	return stats.NewCounter64("rng." + v.Key() + ".values")
}

// Generate returns exactly length values drawn from a fresh source of variant v.
// On error no sample is returned.
// The whole sample is held in memory; use Stream when only a summary is needed.
func Generate(length int, v Variant) ([]float64, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	src, err := NewSource(v)
	if err != nil {
		return nil, err
	}
	sample := make([]float64, length)
	for i := range sample {
		sample[i] = src.Float64()
	}
	valuesCounter(v).AddUint64(uint64(length))
	return sample, nil
}

// Stream draws length values from a fresh source of variant v and passes them
// to fn in order, without keeping them.
func Stream(length int, v Variant, fn func(float64)) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	src, err := NewSource(v)
	if err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		fn(src.Float64())
	}
	valuesCounter(v).AddUint64(uint64(length))
	return nil
}
