package session

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/numex/internal/prompt"
	"github.com/katalvlaran/numex/internal/report"
	"github.com/katalvlaran/numex/series"
)

// ErrNegativeTerms is returned when the fixed term count N is below zero.
var ErrNegativeTerms = errors.New("session: N must be >= 0")

// Row labels of the comparison lines.
const (
	labelFixed  = "A (fixed)"
	labelAuto   = "B (auto) "
	labelStable = "C (stab) "
)

// ExpInput carries values already supplied on the command line.
// A nil X means x is read from the input; so does N, unless X was given,
// in which case N falls back to the configured term count.
type ExpInput struct {
	X     *float64
	Terms *int
}

// Exponential is the eˣ session.
type Exponential struct {
	In      *prompt.Reader
	Out     *report.Printer
	Log     zerolog.Logger
	Options []series.Option
	Probes  []float64
}

// Run executes the full session: three parts, comparisons, probe table.
func (s *Exponential) Run(ctx context.Context, in ExpInput) error {
	opts := s.resolved()
	x, n, err := s.inputs(in, opts.Terms)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeTerms, n)
	}
	s.Log.Debug().
		Float64("x", x).
		Int("terms", n).
		Float64("epsilon", opts.Epsilon).
		Int("max_iterations", opts.MaxIterations).
		Msg("exponential session")

	fixed, err := s.approximate(x, series.Fixed, n)
	if err != nil {
		return err
	}
	auto, err := s.approximate(x, series.Auto, n)
	if err != nil {
		return err
	}
	stable, err := s.approximate(x, series.Stable, n)
	if err != nil {
		return err
	}

	s.Out.Sum("Part A (fixed N)", fixed)
	s.Out.Sum(fmt.Sprintf("Part B (auto, eps=%g)", opts.Epsilon), auto)
	s.Out.Sum("Part C (stable, 1/exp(|x|))", stable)

	s.Out.Header("Comparison against math.Exp(x)")
	s.Out.Comparison(labelFixed, series.Compare(x, fixed.Value), fixed.Iterations)
	s.Out.Comparison(labelAuto, series.Compare(x, auto.Value), auto.Iterations)
	s.Out.Comparison(labelStable, series.Compare(x, stable.Value), stable.Iterations)
	if err := s.Out.Err(); err != nil {
		return err
	}

	return s.Table(ctx)
}

// Table prints the auto and stable comparisons for every probe.
func (s *Exponential) Table(ctx context.Context) error {
	s.Out.Header("Probes (B auto vs C stable)")
	for _, x := range s.Probes {
		if err := ctx.Err(); err != nil {
			return err
		}
		auto, err := s.approximate(x, series.Auto, 0)
		if err != nil {
			return err
		}
		stable, err := s.approximate(x, series.Stable, 0)
		if err != nil {
			return err
		}
		s.Out.Comparison(labelAuto, series.Compare(x, auto.Value), auto.Iterations)
		s.Out.Comparison(labelStable, series.Compare(x, stable.Value), stable.Iterations)
	}

	return s.Out.Err()
}

func (s *Exponential) inputs(in ExpInput, defaultTerms int) (x float64, n int, err error) {
	if in.X != nil {
		x = *in.X
	} else if x, err = s.In.Float64("Enter x (float): "); err != nil {
		return 0, 0, fmt.Errorf("session: read x: %w", err)
	}

	switch {
	case in.Terms != nil:
		n = *in.Terms
	case in.X != nil:
		n = defaultTerms
	default:
		if n, err = s.In.Int("Enter N (integer) for part A, e.g. 20: "); err != nil {
			return 0, 0, fmt.Errorf("session: read N: %w", err)
		}
	}

	return x, n, nil
}

// approximate runs one strategy and warns when the iteration cap was hit.
func (s *Exponential) approximate(x float64, mode series.Mode, terms int) (series.Result, error) {
	r, err := series.Approximate(x, mode, append(slices.Clip(s.Options), series.WithTerms(terms))...)
	if err != nil {
		return series.Result{}, fmt.Errorf("session: %s at x=%g: %w", mode, x, err)
	}
	if !r.Converged {
		s.Log.Warn().
			Stringer("mode", mode).
			Float64("x", x).
			Int("iterations", r.Iterations).
			Msg("iteration cap reached before convergence")
	}

	return r, nil
}

// resolved applies the configured options to the defaults.
func (s *Exponential) resolved() series.Options {
	o := series.DefaultOptions()
	for _, opt := range s.Options {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
