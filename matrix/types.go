// SPDX-License-Identifier: MIT

// Package matrix: domain types used by the dense kernels.
// This file contains ONLY domain-facing types (the Matrix contract and the
// Vector alias). Errors and constructors live in dedicated files
// (errors.go, dense.go) per the package conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float32 values.
// *Dense is the canonical implementation; kernels take a fast path on it and
// fall back to At/Set for any other implementation.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float32, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float32) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Vector is a column vector of float32 values; its length is its dimension.
// Kernels never retain or alias a Vector passed in; results are freshly allocated.
type Vector []float32

// NewVector returns a zero vector of length n.
// Negative n yields ErrInvalidDimensions.
func NewVector(n int) (Vector, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return make(Vector, n), nil
}

// Len returns the dimension of v.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v (nil stays nil).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Finite reports whether every entry of v is neither NaN nor ±Inf.
// Kernels do not guard against float32 overflow, so a long power iteration
// may legitimately produce ±Inf; callers decide how to surface it.
func (v Vector) Finite() bool {
	for _, x := range v {
		if !isFinite32(x) {
			return false
		}
	}

	return true
}
