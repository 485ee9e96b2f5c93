package series_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numex/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproximate_Modes(t *testing.T) {
	res, err := series.Approximate(1, series.Fixed)
	require.NoError(t, err)
	assert.Equal(t, series.DefaultTerms, res.Iterations)
	assert.Equal(t, series.SumFixedTerms(1, series.DefaultTerms), res.Value)

	res, err = series.Approximate(2, series.Fixed, series.WithTerms(3))
	require.NoError(t, err)
	assert.InDelta(t, 19.0/3, res.Value, 1e-14)

	auto, err := series.Approximate(-20, series.Auto, series.WithEpsilon(1e-10), series.WithMaxIterations(500))
	require.NoError(t, err)
	want, err := series.SumUntilConverged(-20, 1e-10, 500)
	require.NoError(t, err)
	assert.Equal(t, want, auto)

	stable, err := series.Approximate(-20, series.Stable)
	require.NoError(t, err)
	want, err = series.SumStable(-20, series.DefaultEpsilon, series.DefaultMaxIterations)
	require.NoError(t, err)
	assert.Equal(t, want, stable)
}

func TestApproximate_Errors(t *testing.T) {
	_, err := series.Approximate(1, series.Mode(9))
	require.ErrorIs(t, err, series.ErrUnknownMode)

	_, err = series.Approximate(math.NaN(), series.Fixed)
	require.ErrorIs(t, err, series.ErrNaN)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { series.WithEpsilon(-1) })
	assert.Panics(t, func() { series.WithEpsilon(math.Inf(1)) })
	assert.Panics(t, func() { series.WithMaxIterations(0) })
	assert.Panics(t, func() { series.WithTerms(-1) })
	assert.NotPanics(t, func() { series.WithEpsilon(0) })
}

func TestMode_StringAndParse(t *testing.T) {
	for _, m := range []series.Mode{series.Fixed, series.Auto, series.Stable} {
		got, err := series.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := series.ParseMode("STABLE")
	require.NoError(t, err)
	assert.Equal(t, series.Stable, got)

	_, err = series.ParseMode("taylor")
	require.ErrorIs(t, err, series.ErrUnknownMode)
	assert.Equal(t, "Mode(7)", series.Mode(7).String())
}

func TestCompare(t *testing.T) {
	c := series.Compare(0, 1)
	assert.Equal(t, series.Comparison{X: 0, Approx: 1, Exact: 1}, c)

	c = series.Compare(1, 2.5)
	assert.InDelta(t, math.E-2.5, c.AbsErr, 1e-15)
	assert.InDelta(t, (math.E-2.5)/math.E, c.RelErr, 1e-15)
}
