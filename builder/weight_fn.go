package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed; Dijkstra rejects them at run time.
func ConstantWeightFn(value int) WeightFn {
	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformWeightFn returns a WeightFn drawing uniformly from [lo, hi].
// With a nil rng it yields lo. Panics if hi < lo.
func UniformWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Intn(hi-lo+1)
	}
}
