package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/lvpack/knapsack"
)

// ExampleSolve packs the third reference record: capacity 75 and nine items.
// Items 2 and 7 weigh 74.57 together and are worth 148, more than any other
// feasible subset.
func ExampleSolve() {
	inst := knapsack.Instance{
		Capacity: 75,
		Items: []knapsack.Item{
			{Index: 1, Weight: 85.31, Cost: 29},
			{Index: 2, Weight: 14.55, Cost: 74},
			{Index: 3, Weight: 3.98, Cost: 16},
			{Index: 4, Weight: 26.24, Cost: 55},
			{Index: 5, Weight: 63.69, Cost: 52},
			{Index: 6, Weight: 76.25, Cost: 75},
			{Index: 7, Weight: 60.02, Cost: 74},
			{Index: 8, Weight: 93.18, Cost: 35},
			{Index: 9, Weight: 89.95, Cost: 78},
		},
	}

	sol, err := knapsack.Solve(inst, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("selected=%s cost=%.0f weight=%.2f\n", sol, sol.Cost, sol.Weight)
	// Output:
	// selected=2, 7 cost=148 weight=74.57
}

// ExampleSolve_rolling uses the single-table mode; nothing fits, so the
// empty marker is printed.
func ExampleSolve_rolling() {
	opts := knapsack.DefaultOptions()
	opts.MemoryMode = knapsack.Rolling

	sol, err := knapsack.Solve(knapsack.Instance{
		Capacity: 8,
		Items:    []knapsack.Item{{Index: 1, Weight: 15.3, Cost: 34}},
	}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sol, sol.Empty())
	// Output:
	// - true
}

// ExampleBruteForce cross-checks the optimum cost of a small instance.
func ExampleBruteForce() {
	inst := knapsack.Instance{
		Capacity: 10,
		Items: []knapsack.Item{
			{Index: 1, Weight: 5, Cost: 10},
			{Index: 2, Weight: 4, Cost: 40},
			{Index: 3, Weight: 6, Cost: 30},
			{Index: 4, Weight: 3, Cost: 50},
		},
	}
	dp, _ := knapsack.Solve(inst, nil)
	ref, _ := knapsack.BruteForce(inst, nil)
	fmt.Println(dp, dp.Cost == ref.Cost)
	// Output:
	// 2, 4 true
}
