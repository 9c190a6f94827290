package indicators

import (
	"github.com/montanaflynn/stats"
)

// StdDev computes the rolling population standard deviation of the values
// over a fixed window.
func StdDev(values []float64, period int) Series {
	series := Series{Period: period, Offset: period - 1}
	if period <= 0 || len(values) < period {
		return series
	}

	series.Values = make([]float64, 0, len(values)-period+1)
	for i := period; i <= len(values); i++ {
		sd, err := stats.StandardDeviation(values[i-period : i])
		if err != nil {
			return Series{Period: period, Offset: period - 1}
		}

		series.Values = append(series.Values, sd)
	}

	return series
}
