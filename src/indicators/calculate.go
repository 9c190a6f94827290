package indicators

import (
	"github.com/optionwatch/optionwatch/src/models"
)

const (
	RsiPeriod    = 14
	SmaPeriod    = 20
	StdDevPeriod = 20
	EmaShort     = 50
	EmaLong      = 200
	AtrPeriod    = 14
)

// TechnicalIndicators bundles the indicator set the signal detector consumes.
// Each series carries its own warm-up offset; a series computed from too few
// bars is empty.
type TechnicalIndicators struct {
	Rsi14  Series
	Sma20  Series
	Ema50  Series
	Ema200 Series
	Atr14  Series
	Std20  Series
}

// Calculate computes the full indicator set from an ordered price series.
func Calculate(prices []models.StockPrice) TechnicalIndicators {
	closes := models.ClosePrices(prices)
	highs := models.HighPrices(prices)
	lows := models.LowPrices(prices)

	return TechnicalIndicators{
		Rsi14:  Rsi(closes, RsiPeriod),
		Sma20:  Sma(closes, SmaPeriod),
		Ema50:  Ema(closes, EmaShort),
		Ema200: Ema(closes, EmaLong),
		Atr14:  Atr(highs, lows, closes, AtrPeriod),
		Std20:  StdDev(closes, StdDevPeriod),
	}
}
