package indicators

import "math"

// Atr computes the average true range from high/low/close series using
// Wilder smoothing. True range needs the previous close, so the warm-up
// offset equals the period.
func Atr(highs, lows, closes []float64, period int) Series {
	series := Series{Period: period, Offset: period}
	if period <= 0 || len(closes) < period+1 {
		return series
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return series
	}

	trueRanges := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		tr := math.Max(
			highs[i]-lows[i],
			math.Max(
				math.Abs(highs[i]-closes[i-1]),
				math.Abs(lows[i]-closes[i-1]),
			),
		)
		trueRanges = append(trueRanges, tr)
	}

	var atr float64
	for _, tr := range trueRanges[:period] {
		atr += tr
	}
	atr /= float64(period)

	series.Values = make([]float64, 0, len(trueRanges)-period+1)
	series.Values = append(series.Values, atr)

	for _, tr := range trueRanges[period:] {
		atr = (atr*(float64(period)-1.0) + tr) / float64(period)
		series.Values = append(series.Values, atr)
	}

	return series
}
