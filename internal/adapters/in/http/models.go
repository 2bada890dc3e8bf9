package http

import (
	"time"

	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/summary"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetSummaryParams defines parameters for GetSummary.
type GetSummaryParams struct {
	Now     *time.Time `form:"now,omitempty" json:"now,omitempty"`
	Country *[]string  `form:"country,omitempty" json:"country,omitempty"`
	Agent   *[]string  `form:"agent,omitempty" json:"agent,omitempty"`
	Type    *[]string  `form:"type,omitempty" json:"type,omitempty"`
	From    *string    `form:"from,omitempty" json:"from,omitempty"`
	To      *string    `form:"to,omitempty" json:"to,omitempty"`
}

// GetDelaysParams defines parameters for GetDelays.
type GetDelaysParams struct {
	Now   *time.Time `form:"now,omitempty" json:"now,omitempty"`
	Limit *int       `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetBacklogParams defines parameters for GetBacklog.
type GetBacklogParams struct {
	Now    *time.Time `form:"now,omitempty" json:"now,omitempty"`
	Window *int       `form:"window,omitempty" json:"window,omitempty"`
}

// ImportOrder is one delivery record of an import request.
type ImportOrder struct {
	DeliveryNo      string              `json:"deliveryNo" validate:"required,max=64"`
	Status          string              `json:"status" validate:"max=16"`
	DeliveryType    string              `json:"deliveryType,omitempty" validate:"max=32"`
	LoadingDate     string              `json:"loadingDate,omitempty" validate:"max=64"`
	StatusChangedAt string              `json:"statusChangedAt,omitempty" validate:"max=64"`
	Country         string              `json:"country,omitempty" validate:"max=64"`
	ForwardingAgent string              `json:"forwardingAgent,omitempty" validate:"max=128"`
	TotalWeight     decimal.NullDecimal `json:"totalWeight"`
	BillOfLading    string              `json:"billOfLading,omitempty" validate:"max=64"`
	Note            string              `json:"note,omitempty" validate:"max=1024"`
}

func (o ImportOrder) toDomain() delivery.Order {
	return delivery.Order{
		DeliveryNo:      o.DeliveryNo,
		Status:          o.Status,
		DeliveryType:    delivery.Type(o.DeliveryType),
		LoadingDate:     o.LoadingDate,
		StatusChangedAt: o.StatusChangedAt,
		Country:         o.Country,
		ForwardingAgent: o.ForwardingAgent,
		TotalWeight:     o.TotalWeight,
		BillOfLading:    o.BillOfLading,
		Note:            o.Note,
	}
}

// ImportDeliveriesRequest is the body of POST /deliveries/import.
type ImportDeliveriesRequest struct {
	Source string        `json:"source" validate:"required,max=128"`
	Orders []ImportOrder `json:"orders" validate:"required,min=1,max=50000,dive"`
}

type ImportDeliveriesResponse struct {
	BatchID  string `json:"batchId"`
	Accepted int    `json:"accepted"`
}

type DelayedOrder struct {
	DeliveryNo      string `json:"deliveryNo"`
	Status          string `json:"status"`
	ForwardingAgent string `json:"forwardingAgent"`
	Country         string `json:"country,omitempty"`
	LoadingDate     string `json:"loadingDate"`
	DelayDays       int    `json:"delayDays"`
	DeliveryType    string `json:"deliveryType,omitempty"`
	BillOfLading    string `json:"billOfLading,omitempty"`
	StatusChangedAt string `json:"statusChangedAt,omitempty"`
}

type DelayedOrdersResponse struct {
	Total  int            `json:"total"`
	Orders []DelayedOrder `json:"orders"`
}

func newDelayedOrdersResponse(r queries.GetDelayedOrdersQueryResponse) DelayedOrdersResponse {
	orders := make([]DelayedOrder, len(r.Orders))
	for i, o := range r.Orders {
		orders[i] = DelayedOrder{
			DeliveryNo:      o.DeliveryNo,
			Status:          o.Status,
			ForwardingAgent: o.Agent,
			Country:         o.Country,
			LoadingDate:     o.LoadingDate,
			DelayDays:       o.DelayDays,
			DeliveryType:    o.DeliveryType,
			BillOfLading:    o.BillOfLading,
			StatusChangedAt: o.StatusChangedAt,
		}
	}
	return DelayedOrdersResponse{Total: r.Total, Orders: orders}
}

type BacklogResponse struct {
	Window int                  `json:"window"`
	Agents []string             `json:"agents"`
	Rows   []summary.BacklogRow `json:"rows"`
	Trend  []summary.TrendPoint `json:"trend"`
}
