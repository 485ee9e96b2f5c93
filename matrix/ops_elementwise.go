// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons.
//
// Purpose:
//   - Tolerance-based equality for matrices and vectors, used to compare
//     power-iteration results against closed forms.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - Relation per element: |a−b| ≤ atol + rtol·|b| (numpy.allclose convention).

package matrix

import "math"

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a−b| ≤ atol + rtol·|b|.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Errors:
//   - ErrNaNInf for non-finite tolerances; ErrNilMatrix; ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float32
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// VecAllClose is AllClose for vectors.
//
// Errors:
//   - ErrNaNInf for non-finite tolerances; ErrNilMatrix for nil; ErrDimensionMismatch.
func VecAllClose(a, b Vector, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateVecLen(a, len(b)); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	for i := range a {
		if !closeEnough(a[i], b[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

func normalizeTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, ErrNaNInf
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// closeEnough compares in float64 so the tolerance itself is not rounded to float32.
func closeEnough(a, b float32, rtol, atol float64) bool {
	av, bv := float64(a), float64(b)
	if av == bv {
		return true // covers equal infinities
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
