package queries

import (
	"context"
	"fmt"
	"time"

	"dashboard/internal/core/application/engine"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/summary"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
)

// GetSummaryQueryHandler aggregates on demand, bypassing the published snapshot.
type GetSummaryQueryHandler struct {
	reader  ports.DeliveryOrderReader
	engines *engine.Provider
	clock   kernel.Clock
}

func NewGetSummaryQueryHandler(reader ports.DeliveryOrderReader, engines *engine.Provider, clock kernel.Clock) GetSummaryQueryHandler {
	return GetSummaryQueryHandler{
		reader:  reader,
		engines: engines,
		clock:   clock,
	}
}

// Handle returns nil when no order matches the filter.
func (h GetSummaryQueryHandler) Handle(ctx context.Context, query GetSummaryQuery) (*summary.Summary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agg := h.engines.Current()
	orders, err := loadOrders(ctx, h.reader, query.Filter(), agg)
	if err != nil {
		return nil, err
	}

	return agg.Aggregate(orders, resolveNow(query.Now(), h.clock)), nil
}

// loadOrders pushes the categorical filter to the reader and applies the
// date range with the engine's calendar.
func loadOrders(ctx context.Context, reader ports.DeliveryOrderReader, filter delivery.Filter, agg services.Aggregator) ([]delivery.Order, error) {
	var (
		orders []delivery.Order
		err    error
	)
	if filter.IsEmpty() {
		orders, err = reader.GetAll(ctx)
	} else {
		orders, err = reader.GetFiltered(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("load deliveries: %w", err)
	}
	return filter.Apply(orders, agg.Calendar()), nil
}

func resolveNow(now time.Time, clock kernel.Clock) time.Time {
	if now.IsZero() {
		return clock.Now()
	}
	return now
}
