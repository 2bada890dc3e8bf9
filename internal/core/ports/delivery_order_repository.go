// Package ports defines the contracts between the analytics core and its
// infrastructure: the delivery store, import batch bookkeeping and the
// transaction boundary around them.
package ports

import (
	"context"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
)

// DeliveryOrderReader supplies the order snapshot the engine aggregates.
// Returned slices are owned by the caller and never mutated by the reader.
type DeliveryOrderReader interface {
	// GetAll returns every stored order.
	GetAll(ctx context.Context) ([]delivery.Order, error)

	// GetFiltered returns the orders matching the categorical dimensions of
	// filter. Implementations may ignore the date range; callers apply it
	// with the engine's calendar.
	GetFiltered(ctx context.Context, filter delivery.Filter) ([]delivery.Order, error)
}

// DeliveryOrderRepository is the write side of the delivery store.
type DeliveryOrderRepository interface {
	DeliveryOrderReader

	// UpsertMany inserts or replaces orders keyed by delivery number and
	// tags them with batch. It returns the number of rows written.
	UpsertMany(ctx context.Context, orders []delivery.Order, batch kernel.UUID) (int, error)
}
