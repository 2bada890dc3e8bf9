package ports

import (
	"context"

	"dashboard/internal/core/domain/model/importbatch"
	"dashboard/internal/core/domain/model/kernel"
)

// ImportBatchRepository records completed imports.
type ImportBatchRepository interface {
	// Add persists a new batch.
	Add(ctx context.Context, batch *importbatch.Batch) error

	// Get returns the batch with id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*importbatch.Batch, error)
}
