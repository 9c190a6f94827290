package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSma(t *testing.T) {
	t.Run("rolling window", func(t *testing.T) {
		series := Sma([]float64{1, 2, 3, 4, 5}, 3)

		assert.Equal(t, 2, series.Offset)
		assert.Equal(t, []float64{2, 3, 4}, series.Values)

		val, ok := series.ValueAt(2)
		assert.True(t, ok)
		assert.Equal(t, 2.0, val)

		val, ok = series.ValueAt(4)
		assert.True(t, ok)
		assert.Equal(t, 4.0, val)

		_, ok = series.ValueAt(1)
		assert.False(t, ok)
	})

	t.Run("series shorter than period is unavailable", func(t *testing.T) {
		series := Sma([]float64{1, 2}, 3)
		assert.True(t, series.IsEmpty())

		_, ok := series.Last()
		assert.False(t, ok)
	})
}

func TestStdDev(t *testing.T) {
	t.Run("population formula", func(t *testing.T) {
		series := StdDev([]float64{1, 2, 3, 4}, 4)

		assert.Len(t, series.Values, 1)

		val, ok := series.ValueAt(3)
		assert.True(t, ok)
		assert.InDelta(t, 1.1180, val, 1e-3)
	})

	t.Run("flat window has zero deviation", func(t *testing.T) {
		series := StdDev([]float64{5, 5, 5, 5, 5}, 3)

		assert.Equal(t, []float64{0, 0, 0}, series.Values)
	})
}
