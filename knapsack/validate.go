// Package knapsack - validation and weight scaling shared by Solve and BruteForce.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - One pass over the items; the scaled slices are the only allocations.
package knapsack

import "math"

// scaledInstance is an Instance with capacity and weights in integer units.
// Costs stay decimal.
type scaledInstance struct {
	capacity int       // round(Capacity·Scale)
	weights  []int     // round(Weight·Scale) per item, input order
	costs    []float64 // Cost per item, input order
}

// Scaled returns round(v·scale) as an integer. Halves round away from zero,
// so 53.38·100 = 5337.999… maps to 5338.
//
// Complexity: O(1).
func Scaled(v float64, scale int) int64 {
	return int64(math.Round(v * float64(scale)))
}

// scaledFloat is Scaled before the integer conversion, for range checks.
func scaledFloat(v float64, scale int) float64 {
	return math.Round(v * float64(scale))
}

// resolveOptions applies defaults to opts (nil ⇒ DefaultOptions) and checks
// the option values.
//
// Complexity: O(1).
func resolveOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o.MemoryMode = opts.MemoryMode
		if opts.Scale != 0 {
			o.Scale = opts.Scale
		}
	}
	if o.Scale < 1 || o.Scale > MaxScale {
		return Options{}, ErrBadScale
	}
	switch o.MemoryMode {
	case TwoTables, Rolling:
		// ok
	default:
		return Options{}, ErrUnknownMemoryMode
	}

	return o, nil
}

// scaleInstance validates inst and converts it to integer units.
//
// Contract:
//   - Capacity, weights and costs must be finite and ≥ 0.
//   - round(Capacity·Scale) must not exceed MaxScaledCapacity.
//
// Complexity: O(n) time, O(n) space.
func scaleInstance(inst Instance, scale int) (scaledInstance, error) {
	// Stage 1: capacity.
	if !finiteNonNegative(inst.Capacity) {
		return scaledInstance{}, ErrNegativeCapacity
	}
	if scaledFloat(inst.Capacity, scale) > MaxScaledCapacity {
		return scaledInstance{}, ErrCapacityTooLarge
	}
	c := Scaled(inst.Capacity, scale)

	// Stage 2: items. Weights above the capacity are clamped to capacity+1:
	// such an item never fits and the clamp keeps the value inside int range.
	n := len(inst.Items)
	s := scaledInstance{
		capacity: int(c),
		weights:  make([]int, n),
		costs:    make([]float64, n),
	}
	var (
		i  int
		it Item
		w  int64
	)
	for i = 0; i < n; i++ {
		it = inst.Items[i]
		if !finiteNonNegative(it.Weight) {
			return scaledInstance{}, ErrNegativeWeight
		}
		if !finiteNonNegative(it.Cost) {
			return scaledInstance{}, ErrNegativeCost
		}
		w = c + 1
		if scaledFloat(it.Weight, scale) <= float64(c) {
			w = Scaled(it.Weight, scale)
		}
		s.weights[i] = int(w)
		s.costs[i] = it.Cost
	}

	return s, nil
}

// finiteNonNegative reports v ≥ 0 and v is neither NaN nor ±Inf.
func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
