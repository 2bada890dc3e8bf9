package deliveryrepo

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertBatchSize bounds the rows per INSERT statement.
const upsertBatchSize = 500

// agentExpr matches delivery.Order.Agent for blank agents.
const agentExpr = "COALESCE(NULLIF(TRIM(forwarding_agent), ''), '" + delivery.UnassignedAgent + "')"

// GormDeliveryRepository implements ports.DeliveryOrderRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every batch of orders written in a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a repository on db. tracker may be nil
// for read-only use.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// UpsertMany writes orders, replacing existing rows with the same delivery number.
func (r *GormDeliveryRepository) UpsertMany(ctx context.Context, orders []delivery.Order, batch kernel.UUID) (int, error) {
	if err := batch.Validate(); err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	// A row may be touched once per statement; the last duplicate wins.
	var err error
	dtos := make([]DeliveryDTO, 0, len(orders))
	positions := make(map[string]int, len(orders))
	for i, o := range orders {
		if validationErr := o.Validate(); validationErr != nil {
			err = errors.Join(err, fmt.Errorf("order %d: %w", i, validationErr))
			continue
		}
		dto := fromDomain(o, batch.Google())
		if pos, seen := positions[dto.DeliveryNo]; seen {
			dtos[pos] = dto
			continue
		}
		positions[dto.DeliveryNo] = len(dtos)
		dtos = append(dtos, dto)
	}
	if err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "delivery_no"}},
			UpdateAll: true,
		}).
		CreateInBatches(&dtos, upsertBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(batch, orders)
	}
	return int(result.RowsAffected), nil
}

// GetAll returns every stored order ordered by delivery number.
func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]delivery.Order, error) {
	return r.find(r.db.WithContext(ctx))
}

// GetFiltered pushes the country, agent and type dimensions of filter down
// to SQL. The date range is left to the caller because loading dates are
// stored as imported.
func (r *GormDeliveryRepository) GetFiltered(ctx context.Context, filter delivery.Filter) ([]delivery.Order, error) {
	query := r.db.WithContext(ctx)
	if len(filter.Countries) > 0 {
		query = query.Where("UPPER(TRIM(country)) = ANY(?)", pq.Array(filter.Countries))
	}
	if len(filter.Agents) > 0 {
		query = query.Where(agentExpr+" = ANY(?)", pq.Array(filter.Agents))
	}
	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		query = query.Where("LOWER(TRIM(delivery_type)) = ANY(?)", pq.Array(types))
	}
	return r.find(query)
}

func (r *GormDeliveryRepository) find(query *gorm.DB) ([]delivery.Order, error) {
	var dtos []DeliveryDTO
	if err := query.Order("delivery_no").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]delivery.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomain(dto))
	}
	return orders, nil
}
