// Package knapsack_test - shared fixtures for solver tests.
package knapsack_test

import (
	"testing"

	"github.com/katalvlaran/lvpack/knapsack"
)

// item is a compact fixture row: index, weight, cost.
type item struct {
	idx  int
	w, c float64
}

// instance builds a knapsack.Instance from fixture rows.
func instance(capacity float64, rows ...item) knapsack.Instance {
	inst := knapsack.Instance{Capacity: capacity, Items: make([]knapsack.Item, len(rows))}
	for i, r := range rows {
		inst.Items[i] = knapsack.Item{Index: r.idx, Weight: r.w, Cost: r.c, Currency: '€'}
	}
	return inst
}

// scenarios are the four reference records and their expected output.
var scenarios = []struct {
	name string
	inst knapsack.Instance
	want string
}{
	{
		name: "single_best_item",
		inst: instance(81,
			item{1, 53.38, 45}, item{2, 88.62, 98}, item{3, 78.48, 3},
			item{4, 72.30, 76}, item{5, 30.18, 9}, item{6, 46.34, 48}),
		want: "4",
	},
	{
		name: "nothing_fits",
		inst: instance(8, item{1, 15.3, 34}),
		want: "-",
	},
	{
		name: "pair_beats_triple",
		inst: instance(75,
			item{1, 85.31, 29}, item{2, 14.55, 74}, item{3, 3.98, 16},
			item{4, 26.24, 55}, item{5, 63.69, 52}, item{6, 76.25, 75},
			item{7, 60.02, 74}, item{8, 93.18, 35}, item{9, 89.95, 78}),
		want: "2, 7",
	},
	{
		name: "tie_keeps_first_found",
		inst: instance(56,
			item{1, 90.72, 13}, item{2, 33.80, 40}, item{3, 43.15, 10},
			item{4, 37.97, 16}, item{5, 46.81, 36}, item{6, 48.77, 79},
			item{7, 81.80, 45}, item{8, 19.36, 79}, item{9, 6.76, 64}),
		want: "6, 9",
	},
}

// totals sums the scaled weight and the decimal cost of the items named by
// indices.
func totals(t *testing.T, inst knapsack.Instance, indices []int) (weight int64, cost float64) {
	t.Helper()
	byIndex := make(map[int]knapsack.Item, len(inst.Items))
	for _, it := range inst.Items {
		byIndex[it.Index] = it
	}
	for _, idx := range indices {
		it, ok := byIndex[idx]
		if !ok {
			t.Fatalf("index %d not in instance", idx)
		}
		weight += knapsack.Scaled(it.Weight, knapsack.DefaultScale)
		cost += it.Cost
	}
	return weight, cost
}
