// Package gen produces deterministic, valid packing records for tests,
// benchmarks and the `lvpack generate` command.
//
// Records follow the input grammar
//
//	81 : (1,53.38,€45) (2,88.62,€98)
//
// with integer capacities, two-decimal weights and two-decimal costs, all within
// the configured maxima. The same Options always yield the same records.
package gen

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpack/knapsack"
)

// ErrBadOptions is returned for non-positive counts or maxima below 1.
var ErrBadOptions = errors.New("gen: records and items must be positive, maxima at least 1")

// Options configures the generator.
//
// Fields:
//   - Seed        - RNG seed; 0 selects a fixed default.
//   - Records     - number of records to produce.
//   - Items       - items per record (each record draws 1..Items when VaryItems).
//   - VaryItems   - draw the item count per record instead of using Items verbatim.
//   - MaxCapacity - capacities are drawn from [1, MaxCapacity] (whole numbers).
//   - MaxWeight   - weights are drawn from [0.01, MaxWeight].
//   - MaxCost     - costs are drawn from [1.00, MaxCost].
//   - Currency    - marker written before each cost; 0 selects '€'.
type Options struct {
	Seed        int64
	Records     int
	Items       int
	VaryItems   bool
	MaxCapacity float64
	MaxWeight   float64
	MaxCost     float64
	Currency    rune
}

// DefaultOptions returns 10 records of up to 15 items within the 100 limits.
func DefaultOptions() Options {
	return Options{
		Records:     10,
		Items:       15,
		VaryItems:   true,
		MaxCapacity: 100,
		MaxWeight:   100,
		MaxCost:     100,
		Currency:    '€',
	}
}

// Instances draws opts.Records instances.
//
// Complexity: O(Records·Items).
func Instances(opts Options) ([]knapsack.Instance, error) {
	if opts.Records < 1 || opts.Items < 1 ||
		opts.MaxCapacity < 1 || opts.MaxWeight < 1 || opts.MaxCost < 1 {
		return nil, ErrBadOptions
	}
	cur := opts.Currency
	if cur == 0 {
		cur = '€'
	}
	var (
		maxCap  = int(math.Floor(opts.MaxCapacity))
		maxW    = int(math.Floor(opts.MaxWeight * 100))
		maxCost = int(math.Floor(opts.MaxCost * 100))
		out     = make([]knapsack.Instance, opts.Records)
	)
	for rec := range out {
		r := deriveRNG(opts.Seed, uint64(rec))
		n := opts.Items
		if opts.VaryItems {
			n = 1 + r.Intn(opts.Items)
		}
		inst := knapsack.Instance{
			Capacity: float64(1 + r.Intn(maxCap)),
			Items:    make([]knapsack.Item, n),
		}
		for i := range inst.Items {
			inst.Items[i] = knapsack.Item{
				Index:    i + 1,
				Weight:   hundredths(r, 1, maxW),
				Cost:     hundredths(r, 100, maxCost),
				Currency: cur,
			}
		}
		out[rec] = inst
	}

	return out, nil
}

// Records draws opts.Records instances and renders each as one input line.
func Records(opts Options) ([]string, error) {
	insts, err := Instances(opts)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(insts))
	for i, inst := range insts {
		lines[i] = Format(inst)
	}

	return lines, nil
}

// Format renders inst in the input grammar. Items without a Currency get '€'.
func Format(inst knapsack.Instance) string {
	var b strings.Builder
	b.WriteString(formatNumber(inst.Capacity))
	b.WriteString(" :")
	for _, it := range inst.Items {
		cur := it.Currency
		if cur == 0 {
			cur = '€'
		}
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(it.Index))
		b.WriteByte(',')
		b.WriteString(formatNumber(it.Weight))
		b.WriteByte(',')
		b.WriteRune(cur)
		b.WriteString(formatNumber(it.Cost))
		b.WriteByte(')')
	}

	return b.String()
}

// formatNumber prints v with the fewest digits that parse back to v.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
