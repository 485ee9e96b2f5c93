// Package numex is a pair of small numerical experiments in one module.
//
// 🚀 What is inside?
//
//	• series/    eˣ by its Taylor series: fixed term count, auto-stopping
//	             (|S(k) − S(k−1)| ≤ ε or an iteration cap) and a stable
//	             variant computing 1/e^|x| for negative x
//	• matrix/    float32 dense matrices: Mul, MatVec, linear Pow and
//	             vector iteration u⁽ⁿ⁾ = Aⁿ·u⁰
//	• cmd/numex  the interactive CLI (exp, vecit, table)
//
// The internal/ packages hold the CLI plumbing: layered configuration,
// zerolog setup, the token reader used for prompts and the report printer.
//
// Quick example:
//
//	r, _ := series.SumStable(-20, series.DefaultEpsilon, series.DefaultMaxIterations)
//	// r.Value ≈ 2.061153622438558e-09, r.Converged == true
//
//	go install github.com/katalvlaran/numex/cmd/numex@latest
package numex
