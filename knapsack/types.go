package knapsack

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors. Solve and BruteForce return only these.
var (
	// ErrBadScale indicates a negative Options.Scale or one above MaxScale.
	ErrBadScale = errors.New("knapsack: scale must be in [1, MaxScale]")

	// ErrNegativeCapacity indicates a negative, NaN or infinite capacity.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be finite and non-negative")

	// ErrNegativeWeight indicates an item with a negative, NaN or infinite weight.
	ErrNegativeWeight = errors.New("knapsack: item weight must be finite and non-negative")

	// ErrNegativeCost indicates an item with a negative, NaN or infinite cost.
	ErrNegativeCost = errors.New("knapsack: item cost must be finite and non-negative")

	// ErrCapacityTooLarge indicates round(Capacity·Scale) above MaxScaledCapacity.
	ErrCapacityTooLarge = errors.New("knapsack: scaled capacity exceeds MaxScaledCapacity")

	// ErrInstanceTooLarge indicates len(Items)·(scaled capacity+1) above
	// MaxArenaNodes.
	ErrInstanceTooLarge = errors.New("knapsack: items times scaled capacity exceeds MaxArenaNodes")

	// ErrUnknownMemoryMode indicates an unsupported Options.MemoryMode.
	ErrUnknownMemoryMode = errors.New("knapsack: unknown memory mode")

	// ErrTooManyItems indicates a BruteForce call above MaxBruteForceItems.
	ErrTooManyItems = errors.New("knapsack: too many items for exhaustive search")
)

const (
	// DefaultScale turns two-decimal weights and capacities into exact integers.
	DefaultScale = 100

	// MaxScale bounds Options.Scale.
	MaxScale = 1_000_000

	// MaxScaledCapacity bounds the DP table length (minus one).
	MaxScaledCapacity = 1 << 24

	// MaxArenaNodes bounds len(Items)·(scaled capacity+1), the most index-set
	// nodes one Solve can create (one per improved cell per item). Each node
	// is 8 bytes, so the worst case stays below 16 GiB; the default limits
	// (capacity 100, scale 100) reach it only past ~214k items.
	MaxArenaNodes = math.MaxInt32

	// MaxBruteForceItems bounds BruteForce (2^n subsets).
	MaxBruteForceItems = 20
)

// Item is one packing candidate. Index is assigned by the source and reported
// back in Solution.Indices; the solver does not require it to be unique.
type Item struct {
	Index    int
	Weight   float64
	Cost     float64
	Currency rune
}

// Instance is one packing problem: a capacity and the candidates in input order.
type Instance struct {
	Capacity float64
	Items    []Item
}

// Solution is the selected subset.
//
// Indices lists Item.Index values in input order. An empty Indices is the
// "no beneficial selection" marker. Cost and Weight are decimal sums over the
// selected items.
type Solution struct {
	Indices []int
	Cost    float64
	Weight  float64
}

// Empty reports whether nothing was selected.
func (s Solution) Empty() bool {
	return len(s.Indices) == 0
}

// String renders "-" for an empty selection, otherwise the indices joined
// by ", " (e.g. "2, 7").
func (s Solution) String() string {
	if s.Empty() {
		return "-"
	}
	var b strings.Builder
	for i, idx := range s.Indices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(idx))
	}

	return b.String()
}

// MemoryMode controls how Solve stores its DP tables.
//
//   - TwoTables - keep the "before this item" tables intact and write a fresh
//     pair per item, swapping buffers afterwards. Memory: 2·(C+1) cells.
//
//   - Rolling - a single pair of tables updated from high to low capacity, so
//     every read still sees the "before this item" value. Memory: (C+1) cells.
//
// Both modes return identical solutions.
type MemoryMode int

const (
	// TwoTables mode: double-buffered cost/set tables.
	TwoTables MemoryMode = iota

	// Rolling mode: single cost/set table, descending capacity sweep.
	Rolling
)

// String returns the configuration name of the mode.
func (m MemoryMode) String() string {
	switch m {
	case TwoTables:
		return "two-tables"
	case Rolling:
		return "rolling"
	default:
		return "unknown"
	}
}

// ParseMemoryMode maps a configuration name back to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "two-tables", "twotables":
		return TwoTables, nil
	case "rolling":
		return Rolling, nil
	default:
		return 0, ErrUnknownMemoryMode
	}
}

// Options configures Solve and BruteForce.
//
// Fields:
//   - Scale      - multiplier turning decimal weights and capacity into
//     integers (round(v·Scale)). Costs are never scaled. 0 means DefaultScale.
//   - MemoryMode - TwoTables or Rolling storage.
type Options struct {
	Scale      int
	MemoryMode MemoryMode
}

// DefaultOptions returns Scale=DefaultScale and MemoryMode=TwoTables.
func DefaultOptions() Options {
	return Options{Scale: DefaultScale, MemoryMode: TwoTables}
}
