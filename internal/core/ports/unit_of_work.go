package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of an import. Callers own the
// Begin / Commit / Rollback lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DeliveryOrderRepository returns the delivery store bound to the current transaction.
	DeliveryOrderRepository() DeliveryOrderRepository

	// ImportBatchRepository returns the batch store bound to the current transaction.
	ImportBatchRepository() ImportBatchRepository
}
