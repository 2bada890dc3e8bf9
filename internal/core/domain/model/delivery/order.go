package delivery

import (
	"errors"
	"strings"

	"dashboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// UnassignedAgent labels orders without a forwarding agent in carrier breakdowns.
const UnassignedAgent = "unassigned"

// Order is one shipment line. Values are never mutated after loading.
type Order struct {
	DeliveryNo   string `json:"deliveryNo"`
	Status       string `json:"status"`
	DeliveryType Type   `json:"deliveryType,omitempty"`
	// LoadingDate is an instant or calendar date in any layout kernel.Calendar understands.
	LoadingDate string `json:"loadingDate,omitempty"`
	// StatusChangedAt is when the current status was reached. Hourly and
	// shift KPIs fall back to LoadingDate when it is empty.
	StatusChangedAt string              `json:"statusChangedAt,omitempty"`
	Country         string              `json:"country,omitempty"`
	ForwardingAgent string              `json:"forwardingAgent,omitempty"`
	TotalWeight     decimal.NullDecimal `json:"totalWeight"`
	BillOfLading    string              `json:"billOfLading,omitempty"`
	Note            string              `json:"note,omitempty"`
}

// Validate checks the fields an import must carry. Status and dates are
// deliberately not checked here; the engine tolerates malformed values.
func (o Order) Validate() error {
	var err error
	if strings.TrimSpace(o.DeliveryNo) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("deliveryNo"))
	}
	if o.TotalWeight.Valid && o.TotalWeight.Decimal.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidError("totalWeight"))
	}
	return err
}

// Agent returns the forwarding agent, or UnassignedAgent when blank.
func (o Order) Agent() string {
	if agent := strings.TrimSpace(o.ForwardingAgent); agent != "" {
		return agent
	}
	return UnassignedAgent
}

// StatusCode parses the raw status.
func (o Order) StatusCode() (int, error) {
	return ParseStatusCode(o.Status)
}

// EventTime returns the raw timestamp used for intraday KPIs.
func (o Order) EventTime() string {
	if strings.TrimSpace(o.StatusChangedAt) != "" {
		return o.StatusChangedAt
	}
	return o.LoadingDate
}
