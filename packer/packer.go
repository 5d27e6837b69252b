// Package packer drives the parser and the solver over a whole input source:
// one record per line in, one result per record out.
//
// Output lines are either "-" (nothing worth packing) or the selected item
// indices joined by ", ". Blank input lines are skipped.
//
// By default the first invalid record aborts the run (FailFast) and no output
// is produced; SkipInvalid logs the record and carries on without it.
package packer

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/katalvlaran/lvpack/packerr"
	"github.com/katalvlaran/lvpack/parse"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("packer: unknown error policy")

// maxLineBytes bounds a single input record.
const maxLineBytes = 1 << 20

// Policy decides what happens to the run when a record is invalid.
type Policy int

const (
	// FailFast aborts the whole run on the first invalid record.
	FailFast Policy = iota
	// SkipInvalid logs the invalid record, omits it from the output and continues.
	SkipInvalid
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case SkipInvalid:
		return "skip-invalid"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a configuration name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail-fast", "failfast":
		return FailFast, nil
	case "skip-invalid", "skipinvalid", "skip":
		return SkipInvalid, nil
	default:
		return 0, ErrUnknownPolicy
	}
}

// Options configures a Packer.
type Options struct {
	Limits parse.Limits
	Solver knapsack.Options
	Policy Policy
	// Logger receives per-record debug events and skipped-record warnings.
	// It is used as given; callers tag it (e.g. logging.Get("packer")).
	Logger zerolog.Logger
}

// DefaultOptions returns the default limits and solver options, FailFast and
// a disabled logger.
func DefaultOptions() Options {
	return Options{
		Limits: parse.DefaultLimits(),
		Solver: knapsack.DefaultOptions(),
		Policy: FailFast,
		Logger: zerolog.Nop(),
	}
}

// Packer packs records. It holds no per-run state, so one Packer may serve
// any number of sources.
type Packer struct {
	parser *parse.Parser
	solver knapsack.Options
	policy Policy
	log    zerolog.Logger
}

// New builds a Packer from opts.
func New(opts Options) *Packer {
	return &Packer{
		parser: parse.New(opts.Limits),
		solver: opts.Solver,
		policy: opts.Policy,
		log:    opts.Logger,
	}
}

// Pack packs records with DefaultOptions.
func Pack(lines []string) ([]string, error) {
	return New(DefaultOptions()).Pack(lines)
}

// PackFile packs the file at path with DefaultOptions.
func PackFile(path string) (string, error) {
	return New(DefaultOptions()).PackFile(path)
}

// PackLine parses and solves one record. lineNo is attached to errors and
// log events; pass 0 when unknown.
func (p *Packer) PackLine(raw string, lineNo int) (string, error) {
	inst, err := p.parser.ParseLine(raw)
	if err != nil {
		var perr *packerr.Error
		if errors.As(err, &perr) {
			return "", perr.WithLineNo(lineNo)
		}
		return "", err
	}

	sol, err := knapsack.Solve(inst, &p.solver)
	if err != nil {
		return "", packerr.Wrap(err, packerr.Internal, "solver rejected a parsed record").
			WithLine(raw).
			WithLineNo(lineNo)
	}

	result := sol.String()
	p.log.Debug().
		Int("line", lineNo).
		Float64("capacity", inst.Capacity).
		Int("items", len(inst.Items)).
		Float64("cost", sol.Cost).
		Float64("weight", sol.Weight).
		Str("result", result).
		Msg("Record packed")

	return result, nil
}

// Pack packs every non-blank entry of lines and returns one result per packed
// record. Line numbers in errors are 1-based positions in lines.
func (p *Packer) Pack(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		res, ok, err := p.packOne(line, i+1)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, res)
		}
	}

	return out, nil
}

// PackReader packs every record read from r and returns the results, each
// terminated by '\n'. Read failures are reported as UnreadableSource.
func (p *Packer) PackReader(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		b      strings.Builder
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		res, ok, err := p.packOne(strings.TrimSuffix(sc.Text(), "\r"), lineNo)
		if err != nil {
			return "", err
		}
		if ok {
			b.WriteString(res)
			b.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return "", packerr.Wrap(err, packerr.UnreadableSource, "read input").WithLineNo(lineNo + 1)
	}
	p.log.Debug().Int("lines", lineNo).Msg("Input consumed")

	return b.String(), nil
}

// PackFile opens path and packs it with PackReader.
func (p *Packer) PackFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", packerr.Wrapf(err, packerr.UnreadableSource, "open %s", path)
	}
	defer f.Close()

	p.log.Info().Str("path", path).Msg("Packing file")
	return p.PackReader(f)
}

// packOne handles blank lines and the error policy around PackLine.
// ok is false when the line produced no output.
func (p *Packer) packOne(line string, lineNo int) (res string, ok bool, err error) {
	if strings.TrimSpace(line) == "" {
		return "", false, nil
	}
	res, err = p.PackLine(line, lineNo)
	if err == nil {
		return res, true, nil
	}
	if p.policy == SkipInvalid && packerr.CodeOf(err) != packerr.Internal {
		p.log.Warn().
			Err(err).
			Int("line", lineNo).
			Str("code", string(packerr.CodeOf(err))).
			Msg("Skipping invalid record")
		return "", false, nil
	}

	return "", false, err
}
