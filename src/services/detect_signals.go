package services

import (
	"math"

	"github.com/optionwatch/optionwatch/src/indicators"
	"github.com/optionwatch/optionwatch/src/models"
)

const (
	rsiOversoldThreshold = 30.0
	stdBandMultiple      = 2.0
)

// DetectSignals walks the price series bar by bar and emits a flat list of
// chart-condition signals in ascending bar order. Detection starts at the
// first bar where all four consumed indicators have warmed up; since the
// EMA200 has the longest warm-up, that is in practice its first defined bar.
// A bar may emit zero, one or several signals; rule evaluation order is
// stable so same-bar signals keep a deterministic order.
func DetectSignals(symbol models.StockSymbol, prices []models.StockPrice, ind indicators.TechnicalIndicators) []models.Signal {
	var signals []models.Signal

	for i := ind.Ema200.Offset; i < len(prices); i++ {
		rsi, ok := ind.Rsi14.ValueAt(i)
		if !ok {
			continue
		}

		std, ok := ind.Std20.ValueAt(i)
		if !ok {
			continue
		}

		ema200, ok := ind.Ema200.ValueAt(i)
		if !ok {
			continue
		}

		sma, ok := ind.Sma20.ValueAt(i)
		if !ok {
			continue
		}

		if i == 0 {
			continue
		}

		close := prices[i].Close
		prevClose := prices[i-1].Close

		// a flat or gappy window produces a zero or NaN deviation and
		// would false-trigger the band rules
		if math.IsNaN(std) || std == 0 {
			continue
		}

		date := prices[i].Date

		if prevClose > ema200 && close <= ema200 {
			signals = append(signals, models.Signal{
				Symbol:      symbol,
				Date:        date,
				Type:        models.SignalEma200TouchDown,
				Description: "Price touches the EMA200 from above (possible support).",
			})
		} else if prevClose < ema200 && close >= ema200 {
			signals = append(signals, models.Signal{
				Symbol:      symbol,
				Date:        date,
				Type:        models.SignalEma200TouchUp,
				Description: "Price touches the EMA200 from below (possible resistance).",
			})
		}

		if rsi < rsiOversoldThreshold && sma-close > stdBandMultiple*std {
			signals = append(signals, models.Signal{
				Symbol:      symbol,
				Date:        date,
				Type:        models.SignalRsiOversold2Std,
				Description: "RSI < 30 and price is more than 2 standard deviations below the average.",
			})
		}

		lowerBand := sma - stdBandMultiple*std
		if rsi < rsiOversoldThreshold && close <= lowerBand {
			signals = append(signals, models.Signal{
				Symbol:      symbol,
				Date:        date,
				Type:        models.SignalRsiBBLower,
				Description: "RSI < 30 and price touches the lower Bollinger band.",
			})
		}
	}

	return signals
}
