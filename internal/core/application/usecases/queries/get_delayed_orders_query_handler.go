package queries

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"dashboard/internal/core/application/engine"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/summary"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
)

type GetDelayedOrdersQueryHandler struct {
	reader  ports.DeliveryOrderReader
	engines *engine.Provider
	clock   kernel.Clock
}

func NewGetDelayedOrdersQueryHandler(reader ports.DeliveryOrderReader, engines *engine.Provider, clock kernel.Clock) GetDelayedOrdersQueryHandler {
	return GetDelayedOrdersQueryHandler{
		reader:  reader,
		engines: engines,
		clock:   clock,
	}
}

// Handle returns delayed orders, most delayed first and then by delivery number.
func (h GetDelayedOrdersQueryHandler) Handle(ctx context.Context, query GetDelayedOrdersQuery) (GetDelayedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDelayedOrdersQueryResponse{}, err
	}

	orders, err := h.reader.GetAll(ctx)
	if err != nil {
		return GetDelayedOrdersQueryResponse{}, fmt.Errorf("load deliveries: %w", err)
	}

	agg := h.engines.Current()
	delayed := services.NewDelayDetector(agg.Taxonomy(), agg.Calendar()).
		Detect(orders, resolveNow(query.Now(), h.clock))

	slices.SortStableFunc(delayed, func(a, b summary.DelayedOrder) int {
		if c := cmp.Compare(b.DelayDays, a.DelayDays); c != 0 {
			return c
		}
		return cmp.Compare(a.Order.DeliveryNo, b.Order.DeliveryNo)
	})

	total := len(delayed)
	if query.Limit() > 0 && total > query.Limit() {
		delayed = delayed[:query.Limit()]
	}

	views := make([]DelayedOrderView, 0, len(delayed))
	for _, d := range delayed {
		views = append(views, DelayedOrderView{
			DeliveryNo:      d.Order.DeliveryNo,
			Status:          d.Order.Status,
			Agent:           d.Order.Agent(),
			Country:         d.Order.Country,
			LoadingDate:     d.Order.LoadingDate,
			DelayDays:       d.DelayDays,
			DeliveryType:    string(d.Order.DeliveryType),
			BillOfLading:    d.Order.BillOfLading,
			StatusChangedAt: d.Order.StatusChangedAt,
		})
	}

	return GetDelayedOrdersQueryResponse{Total: total, Orders: views}, nil
}
