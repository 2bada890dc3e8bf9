package importbatchrepo

import (
	"context"
	"errors"

	"dashboard/internal/core/domain/model/importbatch"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements ports.ImportBatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch.
func (r *GormBatchRepository) Add(ctx context.Context, batch *importbatch.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	dto := fromDomain(batch)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(batch.ID(), batch)
	}
	return nil
}

// Get retrieves a batch by ID.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*importbatch.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("import batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
