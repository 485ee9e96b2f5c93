package series

import (
	"fmt"
	"math"
)

// SumFixedTerms returns the partial sum S(N) = Σ_{i=0..N} xⁱ/i!.
//
// Algorithm:
//
//	sum, t = 1, 1
//	for i = 1..N:  t = (x/i)·t;  sum += t
//
// N ≤ 0 returns 1.0 (t₀ only). There is no error path: the magnitude of N is
// the caller's business, and NaN x simply propagates.
//
// Complexity: O(N) time, O(1) memory.
func SumFixedTerms(x float64, n int) float64 {
	sum := 1.0  // S(0)
	term := 1.0 // t₀
	for i := 1; i <= n; i++ {
		term = (x / float64(i)) * term
		sum += term
	}

	return sum
}

// SumUntilConverged sums the series until two consecutive partial sums differ
// by at most eps, or until maxIterations terms have been added.
//
// Loop (do-while; at least one term is always added):
//
//	k++; t = (x/k)·t; S += t
//	if k ≥ maxIterations → stop (capped, Converged=false unless the step also met eps)
//	if |S(k) − S(k−1)| ≤ eps → stop (Converged=true)
//
// The cap is checked after the update, so the returned Value always belongs to
// the returned Iterations, including the capped case. A run that would have
// converged at maxIterations+1 is still reported as capped.
//
// For x = 0 the first term is 0, so the result is {1, 1, true}.
//
// Errors:
//   - ErrNaN for NaN x; ErrBadEpsilon for eps < 0 or NaN; ErrBadMaxIterations for maxIterations < 1.
//
// Complexity: O(k) time, O(1) memory.
func SumUntilConverged(x, eps float64, maxIterations int) (Result, error) {
	if err := validate(x, eps, maxIterations); err != nil {
		return Result{}, fmt.Errorf("SumUntilConverged: %w", err)
	}

	return sumUntilConverged(x, eps, maxIterations), nil
}

// sumUntilConverged is the unchecked loop shared by SumUntilConverged and SumStable.
func sumUntilConverged(x, eps float64, maxIterations int) Result {
	var (
		sum    = 1.0 // S(0)
		term   = 1.0 // t₀
		sumOld float64
		k      int
	)
	for {
		sumOld = sum
		k++
		term = (x / float64(k)) * term
		sum += term

		// Negated form so a NaN difference (x = ±Inf) stops the loop.
		done := !(math.Abs(sum-sumOld) > eps)
		if k >= maxIterations {
			return Result{Value: sum, Iterations: k, Converged: done}
		}
		if done {
			return Result{Value: sum, Iterations: k, Converged: true}
		}
	}
}

// SumStable is SumUntilConverged with the identity e⁻ˣ = 1/eˣ applied to
// negative arguments: for x < 0 it sums the all-positive series of |x| and
// returns the reciprocal, with the same Iterations and Converged flag.
// For x ≥ 0 it is exactly SumUntilConverged.
//
// Errors: same as SumUntilConverged.
func SumStable(x, eps float64, maxIterations int) (Result, error) {
	if err := validate(x, eps, maxIterations); err != nil {
		return Result{}, fmt.Errorf("SumStable: %w", err)
	}
	if x >= 0 {
		return sumUntilConverged(x, eps, maxIterations), nil
	}
	pos := sumUntilConverged(math.Abs(x), eps, maxIterations)
	pos.Value = 1.0 / pos.Value

	return pos, nil
}

func validate(x, eps float64, maxIterations int) error {
	switch {
	case math.IsNaN(x):
		return ErrNaN
	case math.IsNaN(eps) || eps < 0:
		return ErrBadEpsilon
	case maxIterations < 1:
		return ErrBadMaxIterations
	}

	return nil
}
