// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// WeightFn produces an edge weight from the (possibly nil) RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(*rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly from [lo, hi). With a nil RNG it yields
// core.DefaultWeight. Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultWeight
		}
		if hi == lo {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// ExponentialWeightFn samples Exp(rate), the usual shape of citation-count
// weights. With a nil RNG it yields core.DefaultWeight. Panics if rate <= 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 || math.IsNaN(rate) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultWeight
		}
		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight sets every edge weight to w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights from U[lo, hi).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithExponentialWeight draws weights from Exp(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
