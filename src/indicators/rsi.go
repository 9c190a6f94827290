package indicators

import "math"

// Rsi computes the relative strength index with Wilder smoothing: the first
// value averages the gains/losses of the first period deltas, subsequent
// values blend each new delta in at weight 1/period. The first delta consumes
// one extra bar, so the warm-up offset equals the period.
func Rsi(values []float64, period int) Series {
	series := Series{Period: period, Offset: period}
	if period <= 0 || len(values) < period+1 {
		return series
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss += math.Abs(delta)
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	series.Values = make([]float64, 0, len(values)-period)
	series.Values = append(series.Values, rsiFromAverages(avgGain, avgLoss))

	for i := period + 1; i < len(values); i++ {
		delta := values[i] - values[i-1]

		var deltaGain, deltaLoss float64
		if delta > 0 {
			deltaGain = delta
		} else {
			deltaLoss = math.Abs(delta)
		}

		avgGain = (avgGain*(float64(period)-1.0) + deltaGain) / float64(period)
		avgLoss = (avgLoss*(float64(period)-1.0) + deltaLoss) / float64(period)

		series.Values = append(series.Values, rsiFromAverages(avgGain, avgLoss))
	}

	return series
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss

	return 100 - (100 / (1 + rs))
}
