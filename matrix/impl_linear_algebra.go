// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication and matrix-vector products. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Define the canonical product kernels used by Pow/Iterate.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Numeric notes:
//   - Accumulation is float32, term by term in ascending k, starting from zero.
//   - Each product is converted to float32 before it is added so the compiler
//     cannot fuse it into an FMA; results are identical on every GOARCH.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum float32 = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul      = "Mul"
	opMatVec   = "MatVec"
	opPow      = "Pow"
	opIterate  = "Iterate"
	opIdentity = "IdentityLike"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use flat row-major indexing;
//     otherwise use At with the same i→j→k order.
//
// Behavior highlights:
//   - C[i][j] = Σ_k A[i][k]·B[k][j], accumulated from ZeroSum in ascending k.
//   - No zero-skipping: 0·Inf must still propagate as NaN.
//   - One allocation for C; A and B are never written.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→j→k loop order on both paths, so both paths agree bit for bit.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int // loop iterators
		av, bv  float32
		current float32
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			mulDenseInto(res, da, db)

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += float32(av * bv) // accumulate product
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// mulDenseInto writes da × db into dst, assigning (never incrementing) every cell.
// dst must be pre-shaped (da.r × db.c) and must not alias da or db.
// Complexity: O(r*n*c).
func mulDenseInto(dst, da, db *Dense) {
	var (
		i, j, k                int
		rowOffsetA, rowOffsetR int
		acc                    float32
	)
	n, c := da.c, db.c
	for i = 0; i < da.r; i++ {
		rowOffsetA = i * n // da.data layout: i*n + k
		rowOffsetR = i * c
		for j = 0; j < c; j++ {
			acc = ZeroSum
			for k = 0; k < n; k++ {
				acc += float32(da.data[rowOffsetA+k] * db.data[k*c+j]) // db.data layout: k*c + j
			}
			dst.data[rowOffsetR+j] = acc
		}
	}
}

// MatVec computes b = m · u for a column vector u.
//
// Contract: m non-nil; u non-nil; len(u) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order, float32 accumulation.
// Complexity: Time O(r*c), Space O(r) for b.
//
// Errors:
//   - ErrNilMatrix (nil m or nil u), ErrDimensionMismatch (len(u) != Cols()).
func MatVec(m Matrix, u Vector) (Vector, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate u is not nil and match with number of columns
	if err := ValidateVecLen(u, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make(Vector, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float32
		for i = 0; i < d.r; i++ {
			acc = ZeroSum  // reset accumulator per row
			base = i * d.c // flat base offset for row i
			for j = 0; j < d.c; j++ {
				acc += float32(d.data[base+j] * u[j]) // accumulate a(i,j)*u(j)
			}
			out[i] = acc
		}

		return out, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float32
	var err error
	for i = 0; i < rows; i++ {
		out[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i] += float32(mv * u[j])
		}
	}

	return out, nil
}
