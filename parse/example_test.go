package parse_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpack/packerr"
	"github.com/katalvlaran/lvpack/parse"
)

// ExampleParseLine parses a two-item record.
func ExampleParseLine() {
	inst, err := parse.ParseLine("75 : (1,85.31,€29) (2,14.55,€74)")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(inst.Capacity, len(inst.Items))
	for _, it := range inst.Items {
		fmt.Printf("%d %.2f %c%.0f\n", it.Index, it.Weight, it.Currency, it.Cost)
	}
	// Output:
	// 75 2
	// 1 85.31 €29
	// 2 14.55 €74
}

// ExampleParseLine_error shows the category check for a bad record.
func ExampleParseLine_error() {
	_, err := parse.ParseLine("120 : (1,1,€1)")
	fmt.Println(errors.Is(err, packerr.ErrCapacityLimitExceeded))
	// Output:
	// true
}
