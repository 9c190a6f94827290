package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const equalityThreshold = 1e-2

func TestRsi(t *testing.T) {
	t.Run("example rsi", func(t *testing.T) {
		// example taken from https://blog.quantinsti.com/rsi-indicator/
		closes := []float64{
			283.46, 280.69, 285.48, 294.08, 293.90, 299.92, 301.15, 284.45,
			294.09, 302.77, 301.97, 306.85, 305.02, 301.06, 291.97,
		}

		series := Rsi(closes, 14)
		assert.Len(t, series.Values, 1)

		val, ok := series.ValueAt(14)
		assert.True(t, ok)
		assert.Less(t, math.Abs(val-55.37), equalityThreshold)

		closes = append(closes, 284.18)
		series = Rsi(closes, 14)
		val, ok = series.ValueAt(15)
		assert.True(t, ok)
		assert.Less(t, math.Abs(val-50.07), equalityThreshold)

		closes = append(closes, 286.48)
		series = Rsi(closes, 14)
		val, ok = series.ValueAt(16)
		assert.True(t, ok)
		assert.Less(t, math.Abs(val-51.55), equalityThreshold)

		closes = append(closes, 284.54)
		series = Rsi(closes, 14)
		val, ok = series.ValueAt(17)
		assert.True(t, ok)
		assert.Less(t, math.Abs(val-50.20), equalityThreshold)
	})

	t.Run("too few closes", func(t *testing.T) {
		series := Rsi([]float64{100.0, 101.0}, 14)
		assert.True(t, series.IsEmpty())

		_, ok := series.ValueAt(1)
		assert.False(t, ok)
	})

	t.Run("all losers", func(t *testing.T) {
		closes := []float64{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

		series := Rsi(closes, 14)
		val, ok := series.ValueAt(14)
		assert.True(t, ok)
		assert.Equal(t, 0.0, val)
	})

	t.Run("all winners", func(t *testing.T) {
		closes := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

		series := Rsi(closes, 14)
		val, ok := series.ValueAt(14)
		assert.True(t, ok)
		assert.Equal(t, 100.0, val)
	})
}
