package series_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/numex/series"
)

func BenchmarkSumUntilConverged(b *testing.B) {
	for _, x := range []float64{1, 50, 100} {
		b.Run("x="+strconv.FormatFloat(x, 'g', -1, 64), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = series.SumUntilConverged(x, 1e-13, 1_000_000)
			}
		})
	}
}

func BenchmarkSumStable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = series.SumStable(-100, 1e-13, 1_000_000)
	}
}
