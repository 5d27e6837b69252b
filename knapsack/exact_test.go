package knapsack_test

import (
	"testing"

	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBruteForce_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		ref, err := knapsack.BruteForce(sc.inst, nil)
		require.NoError(t, err, sc.name)
		sol, err := knapsack.Solve(sc.inst, nil)
		require.NoError(t, err, sc.name)
		_, refCost := totals(t, sc.inst, ref.Indices)
		_, solCost := totals(t, sc.inst, sol.Indices)
		assert.InDelta(t, refCost, solCost, 1e-9, sc.name)
	}
}

// TestBruteForce_PrefersLighterOnTie shows the oracle's own tie rule:
// items 8+9 (26.12) and 6+9 (55.53) are both worth 143; the lighter pair wins.
func TestBruteForce_PrefersLighterOnTie(t *testing.T) {
	ref, err := knapsack.BruteForce(scenarios[3].inst, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9}, ref.Indices)
	assert.InDelta(t, 143.0, ref.Cost, 1e-9)
}

func TestBruteForce_TooManyItems(t *testing.T) {
	rows := make([]item, knapsack.MaxBruteForceItems+1)
	for i := range rows {
		rows[i] = item{i + 1, 1, 1}
	}
	_, err := knapsack.BruteForce(instance(10, rows...), nil)
	assert.ErrorIs(t, err, knapsack.ErrTooManyItems)
}

func TestBruteForce_EmptyMarker(t *testing.T) {
	ref, err := knapsack.BruteForce(instance(10, item{1, 1, 0}, item{2, 11, 5}), nil)
	require.NoError(t, err)
	assert.True(t, ref.Empty())
}

func TestBruteForce_InvalidInput(t *testing.T) {
	_, err := knapsack.BruteForce(instance(1, item{1, -2, 1}), nil)
	assert.ErrorIs(t, err, knapsack.ErrNegativeWeight)
}
