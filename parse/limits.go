package parse

// Default limits of the input format.
const (
	DefaultMaxCapacity = 100.0
	DefaultMaxWeight   = 100.0
	DefaultMaxCost     = 100.0
)

// Limits bounds the values a record may carry. A value equal to its limit is
// accepted; anything above is rejected with the matching *LimitExceeded code.
//
// Fields:
//   - Capacity - maximum package capacity.
//   - Weight   - maximum item weight.
//   - Cost     - maximum item cost (currency marker excluded).
//   - Items    - maximum items per record; 0 means unlimited.
//
// Memory: solving a record of n items allocates up to n·(C+1) index-set
// nodes of 8 bytes, C = round(Capacity·100). At the default capacity that is
// about 80 KiB per item, so an unlimited Items with a 1 MiB line (~100k tiny
// items) can need ~8 GiB. Set Items when input is untrusted. Records whose
// n·(C+1) exceeds knapsack.MaxArenaNodes fail with an Internal error instead
// of being solved.
type Limits struct {
	Capacity float64
	Weight   float64
	Cost     float64
	Items    int
}

// DefaultLimits returns 100 for capacity, weight and cost and no item limit.
func DefaultLimits() Limits {
	return Limits{
		Capacity: DefaultMaxCapacity,
		Weight:   DefaultMaxWeight,
		Cost:     DefaultMaxCost,
	}
}
