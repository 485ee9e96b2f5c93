// Package series approximates the exponential function through its Taylor
// series
//
//	eˣ = Σ_{i=0..∞} xⁱ / i!
//
// using the term recurrence t₀ = 1, tᵢ = (x/i)·tᵢ₋₁ instead of powers and
// factorials, so no intermediate value overflows before the sum does.
//
// 🚀 Three ways to sum:
//
//   - SumFixedTerms: partial sum S(N) through term N (no stopping rule).
//   - SumUntilConverged: stop once |S(k) − S(k−1)| ≤ ε, or after maxIterations
//     terms; the Result says which of the two happened.
//   - SumStable: for x < 0 sum the all-positive series for |x| and
//     return 1/S, avoiding the cancellation of the alternating series.
//
// ✨ Extras:
//   - Approximate dispatches on a Mode with functional options (WithEpsilon, …).
//   - Compare measures an approximation against math.Exp.
//   - Probes lists the default arguments used by the comparison table.
//
// ⚙️ Usage:
//
//	res, err := series.SumStable(-50, 1e-13, 1_000_000)
//	if err != nil { ... }
//	cmp := series.Compare(-50, res.Value)
//	fmt.Println(res.Iterations, cmp.RelErr)
//
// Complexity: O(k) time, O(1) memory for k computed terms.
package series
