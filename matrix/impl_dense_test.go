// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numex/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23) // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56) // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf verifies the default finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)

	require.ErrorIs(t, m.Set(0, 0, float32(math.NaN())), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, float32(math.Inf(1))), matrix.ErrNaNInf)
	require.Equal(t, float32(0), MustAt(t, m, 0, 0)) // rejected writes leave the cell untouched
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, float32(7.89), MustAt(t, m, 1, 2))
}

// TestNewDenseFrom covers copy semantics and shape checks of the flat constructor.
func TestNewDenseFrom(t *testing.T) {
	src := []float32{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)

	src[0] = 99 // the matrix owns its own buffer
	require.Equal(t, float32(1), MustAt(t, m, 0, 0))
	require.Equal(t, float32(3), MustAt(t, m, 1, 0))

	_, err = matrix.NewDenseFrom(2, 2, []float32{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrShapeData)

	_, err = matrix.NewDenseFrom(1, 2, []float32{1, float32(math.Inf(-1))})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestFromRows covers the row-literal constructor including ragged input.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, float32(6), MustAt(t, m, 2, 1))

	_, err = matrix.FromRows([][]float32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeData)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	require.Equal(t, float32(1.0), MustAt(t, m, 0, 0))
	require.Equal(t, float32(3.0), MustAt(t, clone, 0, 0))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, 1, 2, 3, 4.5)

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

// TestVectorHelpers covers NewVector, Clone and Finite.
func TestVectorHelpers(t *testing.T) {
	v, err := matrix.NewVector(3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.True(t, v.Finite())

	_, err = matrix.NewVector(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	c := v.Clone()
	c[0] = 5
	require.Equal(t, float32(0), v[0])
	require.Nil(t, matrix.Vector(nil).Clone())

	c[1] = float32(math.Inf(1))
	require.False(t, c.Finite())
}

// TestFacadeConstructors covers NewZeros and CloneMatrix.
func TestFacadeConstructors(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", z.String())

	_, err = matrix.NewZeros(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	cp := matrix.CloneMatrix(z)
	require.NoError(t, cp.Set(1, 2, 7))
	require.Equal(t, float32(0), MustAt(t, z, 1, 2))
	require.Equal(t, float32(7), MustAt(t, cp, 1, 2))
}
