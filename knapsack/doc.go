// Package knapsack selects the most valuable subset of items that fits into a
// package of bounded weight (the 0/1 knapsack problem) and reports which items
// were chosen, not only the optimum value.
//
// 🚀 What is 0/1 knapsack?
//
//	Every candidate item is either packed whole or left out. Among all subsets
//	whose total weight stays within the capacity, pick one with maximum total
//	cost. Typical uses:
//	  • Parcel and container loading
//	  • Budgeted feature / task selection
//	  • Resource allocation under a single hard limit
//
// ✨ Key features:
//   - exact DP over integer-scaled capacity (decimal weights ×Scale, default 100)
//     with decimal costs compared as given
//   - item-set reconstruction through a persistent index-set arena (no list copying)
//   - two storage modes: TwoTables (double-buffered) and Rolling (single table)
//   - deterministic tie-break: a later item never displaces an equal-cost set
//   - BruteForce oracle for small instances
//
// ⚙️ Usage:
//
//	inst := knapsack.Instance{
//	  Capacity: 75,
//	  Items: []knapsack.Item{
//	    {Index: 1, Weight: 14.55, Cost: 74},
//	    {Index: 2, Weight: 60.02, Cost: 74},
//	  },
//	}
//	sol, err := knapsack.Solve(inst, nil) // nil ⇒ DefaultOptions()
//	fmt.Println(sol)                      // "1, 2" or "-" when nothing is packed
//
// Performance:
//
//   - Time:   O(n·C) where C = round(Capacity·Scale)
//   - Memory: O(C) for the tables plus O(k) arena nodes, k ≤ n·C improvements
//
// The package never logs and never panics on user input; failures are the
// sentinel errors declared in types.go.
package knapsack
