// SPDX-License-Identifier: MIT
// weight_fn.go — edge-weight distributions for graph constructors.
//
// Every WeightFn yields a strictly positive int64: core.SetEdge treats 0 as
// "delete the edge" and rejects negatives, so a constructor-supplied weight
// must always be ≥ 1.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and must return a value ≥ 1;
// panics in constructors indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 1 (0 would delete edges, negatives are rejected by core).
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [min, max]
// inclusive. Panics if min < 1 or max < min. If rng is nil the function
// falls back to DefaultEdgeWeight to keep unseeded builds deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return min + rng.Int63n(max-min+1)
	}
}
