package series

import (
	"fmt"
	"math"
)

// Probes are the arguments of the comparison table: ±1, ±10, ±50, ±100.
// Large |x| exposes the cancellation of the direct series for negative x.
var Probes = []float64{-100, -50, -10, -1, 1, 10, 50, 100}

// Approximate computes eˣ with the strategy selected by mode, configured by opts
// (defaults: ε=1e-13, cap=1e6, N=20).
//
// For Fixed the Result carries Iterations=N and Converged=true, since the only
// stopping rule is the term count.
//
// Errors: ErrUnknownMode plus the errors of the selected strategy.
func Approximate(x float64, mode Mode, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	switch mode {
	case Fixed:
		if math.IsNaN(x) {
			return Result{}, fmt.Errorf("Approximate(%s): %w", mode, ErrNaN)
		}

		return Result{Value: SumFixedTerms(x, o.Terms), Iterations: o.Terms, Converged: true}, nil
	case Auto:
		return SumUntilConverged(x, o.Epsilon, o.MaxIterations)
	case Stable:
		return SumStable(x, o.Epsilon, o.MaxIterations)
	default:
		return Result{}, fmt.Errorf("Approximate(%s): %w", mode, ErrUnknownMode)
	}
}

// Compare measures approx against math.Exp(x).
func Compare(x, approx float64) Comparison {
	exact := math.Exp(x)
	abs := math.Abs(approx - exact)

	return Comparison{
		X:      x,
		Approx: approx,
		Exact:  exact,
		AbsErr: abs,
		RelErr: abs / math.Abs(exact),
	}
}
