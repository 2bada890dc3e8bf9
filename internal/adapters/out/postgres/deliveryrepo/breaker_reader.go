package deliveryrepo

import (
	"context"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/resilience"
)

// BreakerReader guards a DeliveryOrderReader with a circuit breaker so that
// a failing database sheds dashboard load instead of piling up queries.
type BreakerReader struct {
	next    ports.DeliveryOrderReader
	breaker *resilience.CircuitBreaker
}

var _ ports.DeliveryOrderReader = (*BreakerReader)(nil)

func NewBreakerReader(next ports.DeliveryOrderReader, breaker *resilience.CircuitBreaker) *BreakerReader {
	return &BreakerReader{next: next, breaker: breaker}
}

func (r *BreakerReader) GetAll(ctx context.Context) ([]delivery.Order, error) {
	return resilience.ExecuteTyped(ctx, r.breaker, func() ([]delivery.Order, error) {
		return r.next.GetAll(ctx)
	})
}

func (r *BreakerReader) GetFiltered(ctx context.Context, filter delivery.Filter) ([]delivery.Order, error) {
	return resilience.ExecuteTyped(ctx, r.breaker, func() ([]delivery.Order, error) {
		return r.next.GetFiltered(ctx, filter)
	})
}
