// Package deliveryrepo persists delivery orders with GORM. Status and date
// columns keep the raw text they were imported with; parsing is the engine's
// job so that malformed values stay visible in its diagnostics.
package deliveryrepo

import (
	"time"

	"dashboard/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO is one row of the deliveries table.
type DeliveryDTO struct {
	DeliveryNo      string `gorm:"primaryKey"`
	Status          string
	DeliveryType    string `gorm:"index"`
	LoadingDate     string
	StatusChangedAt string
	Country         string              `gorm:"index"`
	ForwardingAgent string              `gorm:"index"`
	TotalWeight     decimal.NullDecimal `gorm:"type:numeric(14,3)"`
	BillOfLading    string
	Note            string
	BatchID         uuid.UUID `gorm:"type:uuid;index"`
	UpdatedAt       time.Time
}

// TableName overrides GORM's default "delivery_dtos".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(o delivery.Order, batch uuid.UUID) DeliveryDTO {
	return DeliveryDTO{
		DeliveryNo:      o.DeliveryNo,
		Status:          o.Status,
		DeliveryType:    string(o.DeliveryType),
		LoadingDate:     o.LoadingDate,
		StatusChangedAt: o.StatusChangedAt,
		Country:         o.Country,
		ForwardingAgent: o.ForwardingAgent,
		TotalWeight:     o.TotalWeight,
		BillOfLading:    o.BillOfLading,
		Note:            o.Note,
		BatchID:         batch,
	}
}

func toDomain(dto DeliveryDTO) delivery.Order {
	return delivery.Order{
		DeliveryNo:      dto.DeliveryNo,
		Status:          dto.Status,
		DeliveryType:    delivery.Type(dto.DeliveryType),
		LoadingDate:     dto.LoadingDate,
		StatusChangedAt: dto.StatusChangedAt,
		Country:         dto.Country,
		ForwardingAgent: dto.ForwardingAgent,
		TotalWeight:     dto.TotalWeight,
		BillOfLading:    dto.BillOfLading,
		Note:            dto.Note,
	}
}
