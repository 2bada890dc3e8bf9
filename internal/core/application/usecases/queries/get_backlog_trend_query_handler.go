package queries

import (
	"context"
	"fmt"

	"dashboard/internal/core/application/engine"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/summary"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
)

type GetBacklogTrendQueryHandler struct {
	reader  ports.DeliveryOrderReader
	engines *engine.Provider
	clock   kernel.Clock
}

func NewGetBacklogTrendQueryHandler(reader ports.DeliveryOrderReader, engines *engine.Provider, clock kernel.Clock) GetBacklogTrendQueryHandler {
	return GetBacklogTrendQueryHandler{
		reader:  reader,
		engines: engines,
		clock:   clock,
	}
}

// Handle returns nil when the store is empty.
func (h GetBacklogTrendQueryHandler) Handle(ctx context.Context, query GetBacklogTrendQuery) (*GetBacklogTrendQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load deliveries: %w", err)
	}

	agg := h.engines.Current()
	s := agg.Aggregate(orders, resolveNow(query.Now(), h.clock))
	if s == nil {
		return nil, nil
	}

	window := query.Window()
	if window == 0 {
		window = agg.TrendWindow()
	}

	series := make([]summary.SeriesPoint, 0, len(s.DailyBacklog))
	for _, row := range s.DailyBacklog {
		series = append(series, summary.SeriesPoint{Date: row.Date, Value: float64(row.Total)})
	}

	return &GetBacklogTrendQueryResponse{
		Window: window,
		Agents: s.Agents,
		Rows:   s.DailyBacklog,
		Trend:  services.NewTrendSmoother().Smooth(series, window),
	}, nil
}
