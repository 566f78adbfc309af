package rng

import (
	"fmt"
	"strings"

	"github.com/grafana/rngstats/errors"
	"github.com/grafana/rngstats/util"
)

// Variant identifies a source of uniform random numbers.
// the zero value is not a valid variant.
type Variant int

const (
	// Engine is a dedicated math/rand generator created for each sample.
	Engine Variant = iota + 1
	// Global is the process-wide generator behind the math/rand package functions.
	Global
	// Runtime is math/rand/v2's package level generator, which uses per-thread
	// ChaCha8 state in the runtime and does not contend between goroutines.
	Runtime
	// ExpPCG is a PCG generator from golang.org/x/exp/rand.
	ExpPCG
	// Gonum draws from gonum's distuv.Uniform on [0,1).
	Gonum
)

var (
	ErrUnsupportedVariant = errors.NewBadConfig("unsupported variant")
	ErrNegativeLength     = errors.NewBadConfig("negative sample length")
)

// Variants returns all known variants, in enumeration order.
func Variants() []Variant {
	return []Variant{Engine, Global, Runtime, ExpPCG, Gonum}
}

// Reference returns the variants compared by the reference experiment.
func Reference() []Variant {
	return []Variant{Engine, Global, Runtime}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	switch v {
	case Engine, Global, Runtime, ExpPCG, Gonum:
		return true
	}
	return false
}

// String provides the display name used in reports
func (v Variant) String() string {
	switch v {
	case Engine:
		return "math/rand.Rand"
	case Global:
		return "math/rand"
	case Runtime:
		return "math/rand/v2"
	case ExpPCG:
		return "x/exp/rand"
	case Gonum:
		return "gonum/distuv"
	}
	panic(fmt.Sprintf("Variant.String(): unknown variant %d", int(v)))
}

// Key provides the short name used in configuration
func (v Variant) Key() string {
	switch v {
	case Engine:
		return "engine"
	case Global:
		return "global"
	case Runtime:
		return "runtime"
	case ExpPCG:
		return "exp"
	case Gonum:
		return "gonum"
	}
	panic(fmt.Sprintf("Variant.Key(): unknown variant %d", int(v)))
}

// FromKey returns the variant for the given configuration key.
func FromKey(key string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "engine":
		return Engine, nil
	case "global":
		return Global, nil
	case "runtime":
		return Runtime, nil
	case "exp":
		return ExpPCG, nil
	case "gonum":
		return Gonum, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, key)
}

// ParseVariants parses a comma separated list of variant keys, keeping the given order.
func ParseVariants(list string) ([]Variant, error) {
	var out []Variant
	for _, key := range util.SplitList(list) {
		v, err := FromKey(key)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
