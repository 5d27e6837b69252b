package packer_test

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpack/gen"
	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/katalvlaran/lvpack/packer"
	"github.com/katalvlaran/lvpack/packerr"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestPackFile_Success(t *testing.T) {
	out, err := packer.PackFile(fixture("success.txt"))
	require.NoError(t, err)
	assert.Equal(t, "4\n-\n2, 7\n6, 9\n", out)
}

func TestPackFile_Failures(t *testing.T) {
	cases := []struct {
		file string
		want error
	}{
		{"invalid_cost.txt", packerr.ErrMissingCurrencyMarker},
		{"unparsable.txt", packerr.ErrInvalidNumberFormat},
		{"exceeding_weight.txt", packerr.ErrWeightLimitExceeded},
		{"exceeding_cost.txt", packerr.ErrCostLimitExceeded},
		{"exceeding_capacity.txt", packerr.ErrCapacityLimitExceeded},
		{"does_not_exist.txt", packerr.ErrUnreadableSource},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			out, err := packer.PackFile(fixture(tc.file))
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, out, "fail-fast must not return partial output")
		})
	}
}

// TestPackFile_ErrorCarriesLine checks diagnostics on the first bad record.
func TestPackFile_ErrorCarriesLine(t *testing.T) {
	_, err := packer.PackFile(fixture("invalid_cost.txt"))
	require.Error(t, err)

	var perr *packerr.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.LineNo)
	assert.Contains(t, perr.Line, "(2,88.62,98)")
}

func TestPack_Lines(t *testing.T) {
	out, err := packer.Pack([]string{
		"8 : (1,15.3,€34)",
		"",
		"   ",
		"75 : (1,85.31,€29) (2,14.55,€74) (3,3.98,€16) (4,26.24,€55) (5,63.69,€52) (6,76.25,€75) (7,60.02,€74) (8,93.18,€35) (9,89.95,€78)",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"-", "2, 7"}, out)
}

func TestPack_FailFastLineNumber(t *testing.T) {
	_, err := packer.Pack([]string{"8 : (1,15.3,€34)", "", "8 : (1,15.3,34)"})
	require.ErrorIs(t, err, packerr.ErrMissingCurrencyMarker)

	var perr *packerr.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.LineNo)
}

// TestPackReader_SkipInvalid keeps valid records, logs the rest, and
// accepts CRLF line endings.
func TestPackReader_SkipInvalid(t *testing.T) {
	var logs bytes.Buffer
	opts := packer.DefaultOptions()
	opts.Policy = packer.SkipInvalid
	opts.Logger = zerolog.New(&logs)

	out, err := packer.New(opts).PackFile(fixture("mixed_crlf.txt"))
	require.NoError(t, err)
	assert.Equal(t, "4\n-\n", out)
	assert.Contains(t, logs.String(), "Skipping invalid record")
	assert.Contains(t, logs.String(), string(packerr.CapacityLimitExceeded))
	assert.Contains(t, logs.String(), `"line":2`)
}

func TestPackReader_FailFastCRLF(t *testing.T) {
	_, err := packer.New(packer.DefaultOptions()).PackFile(fixture("mixed_crlf.txt"))
	assert.ErrorIs(t, err, packerr.ErrCapacityLimitExceeded)
}

func TestPackReader_ReadError(t *testing.T) {
	p := packer.New(packer.DefaultOptions())
	_, err := p.PackReader(iotest.ErrReader(errors.New("disk gone")))
	assert.ErrorIs(t, err, packerr.ErrUnreadableSource)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestPackReader_Empty(t *testing.T) {
	out, err := packer.New(packer.DefaultOptions()).PackReader(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestPackLine_SolverContractViolation: limits wider than the solver accepts
// surface as Internal and are never skipped.
func TestPackLine_SolverContractViolation(t *testing.T) {
	opts := packer.DefaultOptions()
	opts.Policy = packer.SkipInvalid
	opts.Limits.Capacity = 1e12

	_, err := packer.New(opts).Pack([]string{"1000000000 : (1,1,€1)"})
	require.ErrorIs(t, err, packerr.ErrInternal)
	assert.ErrorIs(t, err, knapsack.ErrCapacityTooLarge)
}

// TestPackLine_TooManyCells: a record whose items × capacity cells exceed the
// index-set bound fails as Internal before any table is allocated.
func TestPackLine_TooManyCells(t *testing.T) {
	opts := packer.DefaultOptions()
	opts.Limits.Capacity = 200000

	var b strings.Builder
	b.WriteString("167772 :")
	for i := 1; i <= 129; i++ {
		fmt.Fprintf(&b, " (%d,1,€1)", i)
	}

	_, err := packer.New(opts).Pack([]string{b.String()})
	require.ErrorIs(t, err, packerr.ErrInternal)
	assert.ErrorIs(t, err, knapsack.ErrInstanceTooLarge)
}

func TestPack_RollingMatchesDefault(t *testing.T) {
	gopts := gen.DefaultOptions()
	gopts.Seed = 5
	gopts.Records = 40
	lines, err := gen.Records(gopts)
	require.NoError(t, err)

	want, err := packer.Pack(lines)
	require.NoError(t, err)

	opts := packer.DefaultOptions()
	opts.Solver.MemoryMode = knapsack.Rolling
	got, err := packer.New(opts).Pack(lines)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPack_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	opts := packer.DefaultOptions()
	opts.Logger = zerolog.New(&logs).Level(zerolog.DebugLevel).With().Str("component", "packer").Logger()

	_, err := packer.New(opts).Pack([]string{"8 : (1,15.3,€34)"})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(logs.String(), `"component"`), "the caller's tag is not duplicated")
	assert.Contains(t, logs.String(), `"component":"packer"`)
	assert.Contains(t, logs.String(), `"result":"-"`)
}

func TestParsePolicy(t *testing.T) {
	p, err := packer.ParsePolicy("skip-invalid")
	require.NoError(t, err)
	assert.Equal(t, packer.SkipInvalid, p)

	p, err = packer.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, packer.FailFast, p)
	assert.Equal(t, "fail-fast", p.String())

	_, err = packer.ParsePolicy("retry")
	assert.ErrorIs(t, err, packer.ErrUnknownPolicy)
}
