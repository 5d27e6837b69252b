package knapsack

// BruteForce solves inst by enumerating all 2ⁿ subsets. It is meant as a
// reference for small instances (n ≤ MaxBruteForceItems). Feasibility uses
// the same weight scaling as Solve; costs are summed straight from
// Item.Cost, without going through any DP table.
//
// Among subsets of equal maximum cost BruteForce keeps the lightest one and,
// on equal weight, the one met first in mask order. That rule differs from
// Solve's first-found rule, so only Cost (not Indices) is comparable.
//
// opts.MemoryMode is ignored.
//
// Time complexity:   O(n · 2ⁿ)
// Memory complexity: O(n)
//
// Errors: ErrTooManyItems above MaxBruteForceItems, otherwise as Solve.
func BruteForce(inst Instance, opts *Options) (Solution, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Solution{}, err
	}
	n := len(inst.Items)
	if n > MaxBruteForceItems {
		return Solution{}, ErrTooManyItems
	}
	s, err := scaleInstance(inst, o.Scale)
	if err != nil {
		return Solution{}, err
	}

	var (
		mask, bestMask     int
		i                  int
		weight, bestWeight int
		cost, bestCost     float64
	)
	for mask = 1; mask < 1<<n; mask++ {
		weight, cost = 0, 0
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				weight += s.weights[i]
				cost += inst.Items[i].Cost
			}
		}
		if weight > s.capacity || cost == 0 {
			continue
		}
		if cost > bestCost || (cost == bestCost && weight < bestWeight) {
			bestMask, bestCost, bestWeight = mask, cost, weight
		}
	}

	positions := make([]int, 0, n)
	for i = 0; i < n; i++ {
		if bestMask&(1<<i) != 0 {
			positions = append(positions, i)
		}
	}

	return buildSolution(inst.Items, positions), nil
}
