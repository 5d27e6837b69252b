// Package parse turns one raw input record into a validated knapsack.Instance.
//
// Record grammar:
//
//	record          := capacity ":" item+
//	capacity        := decimal-number
//	item            := "(" index "," weight "," currency-marker cost ")"
//	index           := positive-integer
//	weight, cost    := decimal-number
//	currency-marker := single non-digit character
//
// Items are separated by whitespace, e.g.
//
//	81 : (1,53.38,€45) (2,88.62,€98) (3,78.48,€3)
//
// Parsing is fail-fast: the first problem aborts the record and is returned as
// a *packerr.Error carrying the raw record text. The package is a pure
// transform: no I/O, no logging, no shared state.
package parse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/katalvlaran/lvpack/packerr"
)

// Parser parses records against configured Limits. The zero value is not
// useful; build one with New.
type Parser struct {
	limits Limits
}

// New returns a Parser enforcing limits. Zero Capacity, Weight or Cost
// fields take their default values.
func New(limits Limits) *Parser {
	d := DefaultLimits()
	if limits.Capacity == 0 {
		limits.Capacity = d.Capacity
	}
	if limits.Weight == 0 {
		limits.Weight = d.Weight
	}
	if limits.Cost == 0 {
		limits.Cost = d.Cost
	}

	return &Parser{limits: limits}
}

// Limits returns the limits the Parser enforces.
func (p *Parser) Limits() Limits {
	return p.limits
}

var defaultParser = New(DefaultLimits())

// ParseLine parses raw with DefaultLimits.
func ParseLine(raw string) (knapsack.Instance, error) {
	return defaultParser.ParseLine(raw)
}

// ParseLine parses one record.
//
// Contract:
//   - raw is split on its first ':' into capacity and items segments.
//   - Capacity, weights and costs are non-negative decimals within Limits.
//     Zero is accepted: a zero-weight item always fits and a zero-cost item
//     is never worth packing.
//   - Indices are positive integers, unique within the record.
//   - Items keep their input order.
//
// Check order per item: shape → index → weight → currency marker → cost.
//
// Errors (codes): MalformedRecord, MalformedItem, InvalidNumberFormat,
// CapacityLimitExceeded, WeightLimitExceeded, MissingCurrencyMarker,
// CostLimitExceeded, DuplicateIndex, ItemLimitExceeded.
//
// Complexity: O(len(raw)).
func (p *Parser) ParseLine(raw string) (knapsack.Instance, error) {
	// Stage 1: split capacity from items.
	sep := strings.IndexByte(raw, ':')
	if sep < 0 {
		return knapsack.Instance{}, packerr.New(packerr.MalformedRecord, "missing ':' between capacity and items").WithLine(raw)
	}

	// Stage 2: capacity.
	capTok := strings.TrimSpace(raw[:sep])
	capacity, ok := parseDecimal(capTok)
	if !ok {
		return knapsack.Instance{}, packerr.Newf(packerr.InvalidNumberFormat, "capacity %q is not a number", capTok).WithLine(raw)
	}
	if capacity > p.limits.Capacity {
		return knapsack.Instance{}, packerr.Newf(packerr.CapacityLimitExceeded, "capacity %s above limit %s", capTok, formatLimit(p.limits.Capacity)).WithLine(raw)
	}

	// Stage 3: item tokens.
	tokens := strings.Fields(raw[sep+1:])
	if len(tokens) == 0 {
		return knapsack.Instance{}, packerr.New(packerr.MalformedRecord, "no items after ':'").WithLine(raw)
	}
	if p.limits.Items > 0 && len(tokens) > p.limits.Items {
		return knapsack.Instance{}, packerr.Newf(packerr.ItemLimitExceeded, "%d items above limit %d", len(tokens), p.limits.Items).WithLine(raw)
	}

	inst := knapsack.Instance{Capacity: capacity, Items: make([]knapsack.Item, 0, len(tokens))}
	seen := make(map[int]struct{}, len(tokens))
	for _, tok := range tokens {
		it, perr := p.parseItem(tok)
		if perr != nil {
			return knapsack.Instance{}, perr.WithLine(raw)
		}
		if _, dup := seen[it.Index]; dup {
			return knapsack.Instance{}, packerr.Newf(packerr.DuplicateIndex, "index %d repeats", it.Index).WithLine(raw)
		}
		seen[it.Index] = struct{}{}
		inst.Items = append(inst.Items, it)
	}

	return inst, nil
}

// parseItem parses one "(index,weight,<marker>cost)" token.
func (p *Parser) parseItem(tok string) (knapsack.Item, *packerr.Error) {
	if len(tok) < 2 || tok[0] != '(' || tok[len(tok)-1] != ')' {
		return knapsack.Item{}, packerr.Newf(packerr.MalformedItem, "item %q is not enclosed in parentheses", tok)
	}
	fields := strings.Split(tok[1:len(tok)-1], ",")
	if len(fields) != 3 {
		return knapsack.Item{}, packerr.Newf(packerr.MalformedItem, "item %q has %d fields, want 3", tok, len(fields))
	}

	// index
	index, err := strconv.Atoi(fields[0])
	if err != nil || index < 1 {
		return knapsack.Item{}, packerr.Newf(packerr.InvalidNumberFormat, "index %q in %s is not a positive integer", fields[0], tok)
	}

	// weight
	weight, ok := parseDecimal(fields[1])
	if !ok {
		return knapsack.Item{}, packerr.Newf(packerr.InvalidNumberFormat, "weight %q in %s is not a number", fields[1], tok)
	}
	if weight > p.limits.Weight {
		return knapsack.Item{}, packerr.Newf(packerr.WeightLimitExceeded, "weight %s in %s above limit %s", fields[1], tok, formatLimit(p.limits.Weight))
	}

	// currency marker, then cost
	costTok := fields[2]
	marker, size := utf8.DecodeRuneInString(costTok)
	if size == 0 {
		return knapsack.Item{}, packerr.Newf(packerr.MalformedItem, "item %s has an empty cost", tok)
	}
	if unicode.IsDigit(marker) {
		return knapsack.Item{}, packerr.Newf(packerr.MissingCurrencyMarker, "cost %q in %s has no currency marker", costTok, tok)
	}
	cost, ok := parseDecimal(costTok[size:])
	if !ok {
		return knapsack.Item{}, packerr.Newf(packerr.InvalidNumberFormat, "cost %q in %s is not a number", costTok, tok)
	}
	if cost > p.limits.Cost {
		return knapsack.Item{}, packerr.Newf(packerr.CostLimitExceeded, "cost %q in %s above limit %s", costTok, tok, formatLimit(p.limits.Cost))
	}

	return knapsack.Item{Index: index, Weight: weight, Cost: cost, Currency: marker}, nil
}

// parseDecimal accepts plain non-negative decimals: digits with at most one
// '.', at least one digit. Signs, exponents, hex and NaN/Inf are rejected.
func parseDecimal(s string) (float64, bool) {
	var digits, dots int
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return 0, false
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// formatLimit prints a limit without trailing zeros.
func formatLimit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
