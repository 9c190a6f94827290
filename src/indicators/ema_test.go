package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEma(t *testing.T) {
	t.Run("seeded with simple average", func(t *testing.T) {
		// period 3 => k = 0.5, seed = mean(1,2,3) = 2
		series := Ema([]float64{1, 2, 3, 4, 5}, 3)

		assert.Equal(t, 2, series.Offset)
		assert.Equal(t, []float64{2, 3, 4}, series.Values)
	})

	t.Run("exact period length yields only the seed", func(t *testing.T) {
		series := Ema([]float64{10, 20, 30}, 3)

		assert.Equal(t, []float64{20}, series.Values)

		val, ok := series.ValueAt(2)
		assert.True(t, ok)
		assert.Equal(t, 20.0, val)
	})

	t.Run("series shorter than period is unavailable", func(t *testing.T) {
		series := Ema([]float64{10, 20}, 3)
		assert.True(t, series.IsEmpty())
	})
}

func TestAtr(t *testing.T) {
	t.Run("constant range", func(t *testing.T) {
		highs := []float64{12, 12, 12, 12, 12}
		lows := []float64{10, 10, 10, 10, 10}
		closes := []float64{11, 11, 11, 11, 11}

		series := Atr(highs, lows, closes, 3)

		assert.Equal(t, 3, series.Offset)
		assert.Equal(t, []float64{2, 2}, series.Values)
	})

	t.Run("mismatched inputs are unavailable", func(t *testing.T) {
		series := Atr([]float64{1, 2}, []float64{1, 2, 3}, []float64{1, 2, 3, 4}, 2)
		assert.True(t, series.IsEmpty())
	})
}
