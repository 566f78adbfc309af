package rng

import (
	"fmt"
	"math/rand"
	randv2 "math/rand/v2"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source produces independent draws from the uniform distribution over [0,1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

type runtimeSource struct{}

func (runtimeSource) Float64() float64 { return randv2.Float64() }

type uniformSource struct {
	dist distuv.Uniform
}

func (u uniformSource) Float64() float64 { return u.dist.Rand() }

// NewSource returns a fresh Source for v.
// Engine, ExpPCG and Gonum get their own state, seeded from the runtime generator.
// Global and Runtime share process-wide state.
func NewSource(v Variant) (Source, error) {
	switch v {
	case Engine:
		return rand.New(rand.NewSource(randv2.Int64())), nil
	case Global:
		return globalSource{}, nil
	case Runtime:
		return runtimeSource{}, nil
	case ExpPCG:
		return exprand.New(exprand.NewSource(randv2.Uint64())), nil
	case Gonum:
		return uniformSource{dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: exprand.NewSource(randv2.Uint64()),
		}}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedVariant, int(v))
}
