// Package lvpack decides, for every package to be shipped, which candidate
// items go inside: the subset whose total cost is highest while the total
// weight stays within the package limit (the 0/1 knapsack problem).
//
// 🚀 What is lvpack?
//
//	A small, deterministic packing toolkit that brings together:
//		• Record parsing & validation: "81 : (1,53.38,€45) (2,88.62,€98)"
//		• Exact DP solver with index-set reconstruction (two memory layouts)
//		• Brute-force oracle for small instances
//		• Seeded record generator for tests and demos
//		• A cobra CLI with layered koanf configuration and zerolog logging
//
// Under the hood, everything is organized into flat subpackages:
//
//	knapsack/ - Item, Instance, Solution; Solve (DP) and BruteForce
//	parse/    - one record line → knapsack.Instance, limit checks
//	packerr/  - error codes and the structured *Error carrying the raw line
//	packer/   - lines, readers and files in; "2, 7" / "-" out; error policy
//	gen/      - deterministic random records
//	config/   - defaults → file (TOML/YAML) → LVPACK_* environment
//	logging/  - zerolog console + XDG state log file
//
// Quick example:
//
//	out, err := packer.PackFile("records.txt")
//	// out == "4\n-\n2, 7\n6, 9\n"
//
// Every record is solved independently; output order follows input order,
// and an empty selection prints as "-".
//
//	go install github.com/katalvlaran/lvpack/cmd/lvpack@latest
package lvpack
