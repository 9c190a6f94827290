package indicators

import (
	"github.com/montanaflynn/stats"
)

// Ema computes an exponential moving average seeded with the simple average
// of the first period samples, then the standard recurrence forward with
// k = 2/(period+1).
func Ema(values []float64, period int) Series {
	series := Series{Period: period, Offset: period - 1}
	if period <= 0 || len(values) < period {
		return series
	}

	seed, err := stats.Mean(values[:period])
	if err != nil {
		return Series{Period: period, Offset: period - 1}
	}

	k := 2.0 / (float64(period) + 1.0)

	series.Values = make([]float64, 0, len(values)-period+1)
	series.Values = append(series.Values, seed)

	prev := seed
	for _, v := range values[period:] {
		prev = (v-prev)*k + prev
		series.Values = append(series.Values, prev)
	}

	return series
}
