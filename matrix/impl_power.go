// SPDX-License-Identifier: MIT
// Package matrix: linear matrix power and vector iteration.
//
// Purpose:
//   - Compute Aⁿ by plain repeated multiplication (no squaring) so the
//     accumulation order is exactly acc ← acc·A, n−1 times.
//   - Apply Aⁿ to a start vector: u⁽ⁿ⁾ = Aⁿ · u⁰.
//
// Ownership:
//   - Pow never returns a matrix that aliases its input: A⁰ is a fresh identity,
//     A¹ is a deep copy, and every later step writes into a freshly owned buffer.

package matrix

import "fmt"

// Pow returns Aⁿ for a square matrix A and n ≥ 0.
// Implementation:
//   - Stage 1: Validate A is non-nil and square; n ≥ 0.
//   - Stage 2: n == 0 → identity of A's dimension; n == 1 → deep copy of A.
//   - Stage 3: acc := copy(A); repeat n−1 times: acc ← acc·A (fresh product each step).
//
// Behavior highlights:
//   - Two *Dense buffers ping-pong on the fast path; each step overwrites every
//     cell of the target, which is the "zero, then accumulate" rule from the
//     textbook loop without an explicit zeroing pass.
//   - Non-*Dense inputs are copied into a Dense once, then follow the fast path.
//
// Inputs:
//   - a: square matrix (d × d).
//   - n: exponent, n ≥ 0.
//
// Returns:
//   - Matrix: newly allocated *Dense holding Aⁿ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativeExponent.
//
// Determinism:
//   - Same i→j→k order as Mul; Pow(A, 2) equals Mul(A, A) bit for bit.
//
// Complexity:
//   - Time O(n·d³), Space O(d²).
//
// Notes:
//   - Linear on purpose: exponentiation by squaring changes the rounding
//     sequence of the float32 products.
func Pow(a Matrix, n int) (Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("n=%d: %w", n, ErrNegativeExponent))
	}
	d := a.Rows()
	if n == 0 {
		id, err := NewIdentity(d)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}

		return id, nil
	}

	base, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	acc := base.cloneDense() // A¹, never aliases a
	if n == 1 {
		return acc, nil
	}

	next, err := NewDense(d, d)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	for step := 1; step < n; step++ {
		mulDenseInto(next, acc, base)
		acc, next = next, acc
	}

	return acc, nil
}

// Iterate computes u⁽ⁿ⁾ = Aⁿ · u⁰.
// Errors from Pow (nil, non-square, negative n) and MatVec (vector length)
// are returned wrapped with the "Iterate" tag.
// Complexity: O(n·d³ + d²).
func Iterate(a Matrix, u0 Vector, n int) (Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opIterate, err)
	}
	if err := ValidateVecLen(u0, a.Cols()); err != nil {
		return nil, matrixErrorf(opIterate, err)
	}
	an, err := Pow(a, n)
	if err != nil {
		return nil, matrixErrorf(opIterate, err)
	}
	u, err := MatVec(an, u0)
	if err != nil {
		return nil, matrixErrorf(opIterate, err)
	}

	return u, nil
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
// Callers must not write to the result when it may be m.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
