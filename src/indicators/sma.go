package indicators

import (
	"github.com/montanaflynn/stats"
)

// Sma computes a simple moving average of the values over a fixed window.
// The result is empty when the input is shorter than the period: callers must
// treat the indicator as unavailable, never as zero.
func Sma(values []float64, period int) Series {
	series := Series{Period: period, Offset: period - 1}
	if period <= 0 || len(values) < period {
		return series
	}

	series.Values = make([]float64, 0, len(values)-period+1)
	for i := period; i <= len(values); i++ {
		mean, err := stats.Mean(values[i-period : i])
		if err != nil {
			return Series{Period: period, Offset: period - 1}
		}

		series.Values = append(series.Values, mean)
	}

	return series
}
