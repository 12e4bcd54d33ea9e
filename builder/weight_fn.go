// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"math/rand"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// WeightFn draws one edge weight. Generators call it once per emitted edge
// in emission order, so weights are deterministic for a fixed seed.
type WeightFn func(rng *rand.Rand) core.WeightT

// ConstantWeightFn always returns value. It panics on a non-positive value.
func ConstantWeightFn(value core.WeightT) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) core.WeightT { return value }
}

// UniformWeightFn draws from [lo, hi). It panics unless 0 < lo <= hi.
func UniformWeightFn(lo, hi core.WeightT) WeightFn {
	if lo <= 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < lo <= hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) core.WeightT {
		if hi == lo {
			return lo
		}

		return lo + core.WeightT(rng.Float64())*(hi-lo)
	}
}

// ProbabilityWeightFn draws from (0, 1], suitable for probability-mode
// shortest paths.
func ProbabilityWeightFn(rng *rand.Rand) core.WeightT {
	return core.WeightT(1 - rng.Float64())
}
