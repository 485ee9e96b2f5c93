// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numex/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPow_Zero verifies A⁰ = I for several dimensions, independent of A's values.
func TestPow_Zero(t *testing.T) {
	for _, d := range []int{1, 2, 3, 5} {
		a := MustDense(t, d, d)
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				require.NoError(t, a.Set(i, j, float32(i*d+j+1)))
			}
		}
		p, err := matrix.Pow(a, 0)
		require.NoError(t, err)

		ok, err := matrix.AllClose(p, IdentityDense(t, d), 0, 0)
		require.NoError(t, err)
		assert.True(t, ok, "d=%d got\n%v", d, p)
	}
}

// TestPow_OneIsIndependentCopy verifies A¹ == A element-wise and does not alias A.
func TestPow_OneIsIndependentCopy(t *testing.T) {
	a := sample3(t)

	p, err := matrix.Pow(a, 1)
	require.NoError(t, err)
	ok, err := matrix.AllClose(p, a, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, p.Set(0, 0, 42))
	assert.Equal(t, float32(0.5), MustAt(t, a, 0, 0), "mutating A¹ must not touch A")

	require.NoError(t, a.Set(1, 1, -9))
	assert.Equal(t, float32(0), MustAt(t, p, 1, 1), "mutating A must not touch A¹")
}

// TestPow_TwoEqualsMul verifies A² == A·A on both paths.
func TestPow_TwoEqualsMul(t *testing.T) {
	a := sample3(t)
	want, err := matrix.Mul(a, a)
	require.NoError(t, err)

	for name, in := range map[string]matrix.Matrix{"dense": a, "generic": hide{a}} {
		got, err := matrix.Pow(in, 2)
		require.NoError(t, err, name)
		ok, err := matrix.AllClose(got, want, 1e-5, 0)
		require.NoError(t, err, name)
		assert.True(t, ok, "%s: got\n%vwant\n%v", name, got, want)
	}
}

// TestPow_MatchesRepeatedMul checks Aⁿ against a manual left-to-right product chain.
func TestPow_MatchesRepeatedMul(t *testing.T) {
	a := sample3(t)
	var acc matrix.Matrix = a.Clone()
	for n := 2; n <= 6; n++ {
		var err error
		acc, err = matrix.Mul(acc, a)
		require.NoError(t, err)

		got, err := matrix.Power(a, n)
		require.NoError(t, err)
		ok, err := matrix.AllClose(got, acc, 0, 0)
		require.NoError(t, err)
		assert.True(t, ok, "n=%d", n)
	}
}

// TestPow_DoesNotMutateInput ensures the base matrix survives many steps unchanged.
func TestPow_DoesNotMutateInput(t *testing.T) {
	a := sample3(t)
	before := a.String()

	_, err := matrix.Pow(a, 7)
	require.NoError(t, err)
	assert.Equal(t, before, a.String())
}

// TestPow_Errors covers non-square, nil and negative exponent.
func TestPow_Errors(t *testing.T) {
	_, err := matrix.Pow(MustDense(t, 2, 3), 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Pow(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Pow(IdentityDense(t, 2), -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
}

// TestIterate_DiagonalTwo is the end-to-end scenario A=2I, u0=[1,1,1], n=3 → [8,8,8].
func TestIterate_DiagonalTwo(t *testing.T) {
	a, err := matrix.FromRows([][]float32{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}})
	require.NoError(t, err)

	u, err := matrix.Iterate(a, matrix.Vector{1, 1, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{8, 8, 8}, u)
}

// TestIterate_Fibonacci uses the Fibonacci Q-matrix: Qⁿ·[1,0] = [F(n+1), F(n)].
func TestIterate_Fibonacci(t *testing.T) {
	q := NewFilledDense(t, 2, 2, 1, 1, 1, 0)

	u, err := matrix.Iterate(q, matrix.Vector{1, 0}, 10)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{89, 55}, u)

	u, err = matrix.Iterate(q, matrix.Vector{1, 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{1, 0}, u)
}

// TestIterate_Errors covers vector length mismatch and negative n.
func TestIterate_Errors(t *testing.T) {
	a := IdentityDense(t, 3)

	_, err := matrix.Iterate(a, matrix.Vector{1, 2}, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Iterate(a, matrix.Vector{1, 2, 3}, -2)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
}

// TestIterate_OverflowIsReported ensures float32 overflow surfaces as a non-finite vector.
func TestIterate_OverflowIsReported(t *testing.T) {
	a := NewFilledDense(t, 1, 1, 1e20)

	u, err := matrix.Iterate(a, matrix.Vector{1}, 3)
	require.NoError(t, err)
	assert.False(t, u.Finite())
}
