package services_test

import (
	"testing"

	"dashboard/internal/core/domain/model/summary"
	"dashboard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func series(values ...float64) []summary.SeriesPoint {
	points := make([]summary.SeriesPoint, len(values))
	for i, v := range values {
		points[i] = summary.SeriesPoint{Value: v}
	}
	return points
}

func averages(points []summary.TrendPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Average
	}
	return out
}

func TestTrendSmoother_Smooth(t *testing.T) {
	smoother := services.NewTrendSmoother()

	testCases := map[string]struct {
		values []float64
		window int
		want   []float64
	}{
		"partial leading window": {
			values: []float64{10, 20, 30},
			window: 7,
			want:   []float64{10, 15, 20},
		},
		"full windows slide": {
			values: []float64{1, 2, 3, 4, 5},
			window: 2,
			want:   []float64{1, 1.5, 2.5, 3.5, 4.5},
		},
		"window of one is identity": {
			values: []float64{4, 0, 9},
			window: 1,
			want:   []float64{4, 0, 9},
		},
		"non positive window treated as one": {
			values: []float64{4, 0, 9},
			window: 0,
			want:   []float64{4, 0, 9},
		},
		"empty": {
			values: nil,
			window: 7,
			want:   []float64{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := averages(smoother.Smooth(series(tc.values...), tc.window))
			assert.InDeltaSlice(t, tc.want, got, 1e-9)
		})
	}
}

func TestTrendSmoother_Smooth_KeepsInput(t *testing.T) {
	in := series(3, 6)

	out := services.NewTrendSmoother().Smooth(in, 7)

	assert.Equal(t, series(3, 6), in)
	assert.InDelta(t, 6.0, out[1].Value, 1e-9)
}
