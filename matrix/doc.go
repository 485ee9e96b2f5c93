// Package matrix provides a small dense linear-algebra core for square-matrix
// power iteration.
//
// 🚀 What is vector iteration?
//
//	Given a square matrix A and a start vector u⁰, vector iteration produces
//
//	    u⁽ⁿ⁾ = Aⁿ · u⁰
//
//	where Aⁿ is built by repeated multiplication (A·A·…·A, n factors).
//
// ✨ Key features:
//   - Dense: row-major float32 storage with bounds-checked At/Set
//   - Mul, MatVec: deterministic triple/double loops, *Dense fast path
//   - Pow: linear power (n−1 products; A⁰ = I, A¹ = copy of A)
//   - Iterate: MatVec(Pow(A, n), u⁰) in one call
//   - Validators and sentinel errors instead of undefined behaviour
//
// Ownership:
//
//	Every constructor and kernel returns a freshly allocated result; no
//	output ever aliases an input. Pow(A, 1) is a value-equal copy of A.
//
// ⚙️ Usage:
//
//	a, _ := matrix.FromRows([][]float32{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}})
//	u, err := matrix.Iterate(a, matrix.Vector{1, 1, 1}, 3)
//	// u == [8 8 8]
//
// Performance:
//
//   - Mul:  O(d³) time, O(d²) memory
//   - Pow:  O(n·d³) time, O(d²) memory (two live buffers)
//   - MatVec: O(d²) time, O(d) memory
package matrix
