package knapsack

// Solve - 0/1 knapsack with item-set reconstruction
//
// Description:
//
//	Solve returns a maximum-cost subset of inst.Items whose total weight does
//	not exceed inst.Capacity. Weights and capacity are scaled to integers
//	(round(v·Scale)) so the DP tables are indexed exactly. Costs are summed
//	and compared as decimals, so a cost of 0.004 still counts and 5.004 beats
//	5.001.
//
// Algorithm Outline:
//  1. Let C = round(Capacity·Scale). Allocate bestCost[0..C] = 0 and
//     bestSet[0..C] = ∅.
//  2. For each item p in input order, for each capacity cell c:
//     if w_p > c          → carry bestCost[c], bestSet[c]
//     cand = bestCost[c−w_p] + v_p
//     if cand > bestCost[c] → bestCost[c] = cand, bestSet[c] = bestSet[c−w_p] ∪ {p}
//     else                  → carry (ties keep the set found first)
//  3. The answer is bestSet[C]; ∅ is the "no selection" marker.
//
// Memory Modes:
//   - TwoTables - write into a second pair of tables and swap after each item.
//   - Rolling   - sweep c from C down to w_p in place; bestCost[c−w_p] is still
//     the value from before the current item.
//
// Index sets live in a setArena, so extending a set costs one node instead of
// a copy of the whole list.
//
// Complexity:
//
//	Time   = O(n·C)
//	Memory = O(C) cells (×2 for TwoTables) + O(k) arena nodes, k = improvements
//	         ≤ n·(C+1), 8 bytes each. Instances with n·(C+1) > MaxArenaNodes
//	         are rejected up front.
//
// Errors:
//   - ErrBadScale, ErrUnknownMemoryMode - invalid options.
//   - ErrNegativeCapacity, ErrNegativeWeight, ErrNegativeCost,
//     ErrCapacityTooLarge, ErrInstanceTooLarge - invalid instance.
func Solve(inst Instance, opts *Options) (Solution, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Solution{}, err
	}
	s, err := scaleInstance(inst, o.Scale)
	if err != nil {
		return Solution{}, err
	}
	if int64(len(s.weights))*int64(s.capacity+1) > MaxArenaNodes {
		return Solution{}, ErrInstanceTooLarge
	}

	arena := newSetArena(len(inst.Items) * 4)
	var head int32
	switch o.MemoryMode {
	case Rolling:
		head = fillRolling(s, arena)
	default:
		head = fillTwoTables(s, arena)
	}

	return buildSolution(inst.Items, arena.positions(head)), nil
}

// fillTwoTables runs the double-buffered DP and returns the set id of cell C.
func fillTwoTables(s scaledInstance, arena *setArena) int32 {
	c := s.capacity
	cost, nextCost := make([]float64, c+1), make([]float64, c+1)
	set, nextSet := make([]int32, c+1), make([]int32, c+1)
	for x := range set {
		set[x] = emptySet
	}

	var (
		p, x, w int
		v, cand float64
	)
	for p = range s.weights {
		w, v = s.weights[p], s.costs[p]
		for x = 0; x <= c; x++ {
			if w > x {
				nextCost[x], nextSet[x] = cost[x], set[x]
				continue
			}
			cand = cost[x-w] + v
			if cand > cost[x] {
				nextCost[x], nextSet[x] = cand, arena.push(set[x-w], p)
			} else {
				nextCost[x], nextSet[x] = cost[x], set[x]
			}
		}
		cost, nextCost = nextCost, cost
		set, nextSet = nextSet, set
	}

	return set[c]
}

// fillRolling runs the single-table DP and returns the set id of cell C.
func fillRolling(s scaledInstance, arena *setArena) int32 {
	c := s.capacity
	cost := make([]float64, c+1)
	set := make([]int32, c+1)
	for x := range set {
		set[x] = emptySet
	}

	var (
		p, x, w int
		v, cand float64
	)
	for p = range s.weights {
		w, v = s.weights[p], s.costs[p]
		// Descending sweep: cells below x still hold pre-item values.
		for x = c; x >= w; x-- {
			cand = cost[x-w] + v
			if cand > cost[x] {
				cost[x], set[x] = cand, arena.push(set[x-w], p)
			}
		}
	}

	return set[c]
}

// buildSolution maps item positions back to Item.Index and sums the decimal
// weight and cost of the selection.
func buildSolution(items []Item, positions []int) Solution {
	sol := Solution{Indices: make([]int, 0, len(positions))}
	for _, p := range positions {
		sol.Indices = append(sol.Indices, items[p].Index)
		sol.Weight += items[p].Weight
		sol.Cost += items[p].Cost
	}

	return sol
}
