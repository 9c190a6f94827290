package indicators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/optionwatch/optionwatch/src/models"
)

func makePrices(closes []float64) []models.StockPrice {
	prices := make([]models.StockPrice, len(closes))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		prices[i] = models.StockPrice{
			Symbol: "TEST",
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
		}
	}

	return prices
}

func TestCalculate(t *testing.T) {
	t.Run("short series reports every indicator unavailable", func(t *testing.T) {
		closes := make([]float64, 10)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}

		ind := Calculate(makePrices(closes))

		assert.True(t, ind.Rsi14.IsEmpty())
		assert.True(t, ind.Sma20.IsEmpty())
		assert.True(t, ind.Ema50.IsEmpty())
		assert.True(t, ind.Ema200.IsEmpty())
		assert.True(t, ind.Atr14.IsEmpty())
		assert.True(t, ind.Std20.IsEmpty())
	})

	t.Run("long series aligns every indicator to the last bar", func(t *testing.T) {
		closes := make([]float64, 250)
		for i := range closes {
			closes[i] = 100 + float64(i%7)
		}

		ind := Calculate(makePrices(closes))

		assert.Len(t, ind.Sma20.Values, 231)
		assert.Len(t, ind.Std20.Values, 231)
		assert.Len(t, ind.Rsi14.Values, 236)
		assert.Len(t, ind.Ema200.Values, 51)

		last := len(closes) - 1
		_, ok := ind.Rsi14.ValueAt(last)
		assert.True(t, ok)
		_, ok = ind.Sma20.ValueAt(last)
		assert.True(t, ok)
		_, ok = ind.Ema200.ValueAt(last)
		assert.True(t, ok)
		_, ok = ind.Std20.ValueAt(last)
		assert.True(t, ok)

		// nothing is defined before its own warm-up
		_, ok = ind.Ema200.ValueAt(198)
		assert.False(t, ok)
		_, ok = ind.Rsi14.ValueAt(13)
		assert.False(t, ok)
	})
}
