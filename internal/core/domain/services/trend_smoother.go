package services

import "dashboard/internal/core/domain/model/summary"

// DefaultTrendWindow is the moving-average length in days.
const DefaultTrendWindow = 7

// TrendSmoother computes trailing moving averages.
type TrendSmoother struct{}

func NewTrendSmoother() TrendSmoother {
	return TrendSmoother{}
}

// Smooth returns, for every point i, the mean of the values from
// max(0, i-window+1) through i. Leading points average over the shorter
// prefix instead of being left undefined. A window below 1 is treated as 1.
// The input is not modified.
func (TrendSmoother) Smooth(series []summary.SeriesPoint, window int) []summary.TrendPoint {
	if window < 1 {
		window = 1
	}

	out := make([]summary.TrendPoint, len(series))
	var sum float64
	for i, p := range series {
		sum += p.Value
		if i >= window {
			sum -= series[i-window].Value
		}
		n := min(i+1, window)
		out[i] = summary.TrendPoint{
			Date:    p.Date,
			Value:   p.Value,
			Average: sum / float64(n),
		}
	}
	return out
}
