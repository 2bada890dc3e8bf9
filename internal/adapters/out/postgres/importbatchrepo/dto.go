// Package importbatchrepo persists import batch bookkeeping with GORM.
package importbatchrepo

import (
	"time"

	"dashboard/internal/core/domain/model/importbatch"
	"dashboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO is one row of the import_batches table.
type BatchDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Source     string    `gorm:"index"`
	Accepted   int
	ImportedAt time.Time `gorm:"index"`
}

func (BatchDTO) TableName() string {
	return "import_batches"
}

func fromDomain(batch *importbatch.Batch) BatchDTO {
	return BatchDTO{
		ID:         batch.ID().Google(),
		Source:     batch.Source(),
		Accepted:   batch.Accepted(),
		ImportedAt: batch.ImportedAt(),
	}
}

func toDomain(dto BatchDTO) (*importbatch.Batch, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return importbatch.RestoreBatch(id, dto.Source, dto.Accepted, dto.ImportedAt)
}
