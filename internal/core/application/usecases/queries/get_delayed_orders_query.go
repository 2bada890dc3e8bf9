package queries

import (
	"errors"
	"time"

	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

// MaxDelayedOrdersLimit caps one page of delayed orders.
const MaxDelayedOrdersLimit = 1000

var ErrGetDelayedOrdersQueryIsNotConstructed = errors.New(
	"GetDelayedOrdersQuery must be created via NewGetDelayedOrdersQuery constructor",
)

// GetDelayedOrdersQuery lists open orders past their loading day.
type GetDelayedOrdersQuery struct {
	now   time.Time
	limit int

	guard guard.ConstructorGuard
}

// NewGetDelayedOrdersQuery builds the query. A zero now means "as of the
// clock" and a zero limit returns every delayed order.
func NewGetDelayedOrdersQuery(now time.Time, limit int) (GetDelayedOrdersQuery, error) {
	if limit < 0 || limit > MaxDelayedOrdersLimit {
		return GetDelayedOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxDelayedOrdersLimit)
	}
	return GetDelayedOrdersQuery{
		now:   now,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDelayedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDelayedOrdersQueryIsNotConstructed)
}

func (q GetDelayedOrdersQuery) Now() time.Time {
	return q.now
}

func (q GetDelayedOrdersQuery) Limit() int {
	return q.limit
}

// GetDelayedOrdersQueryResponse holds one page of delayed orders.
type GetDelayedOrdersQueryResponse struct {
	// Total counts every delayed order before the limit is applied.
	Total  int
	Orders []DelayedOrderView
}

// DelayedOrderView is the dashboard row for a delayed order.
type DelayedOrderView struct {
	DeliveryNo      string
	Status          string
	Agent           string
	Country         string
	LoadingDate     string
	DelayDays       int
	DeliveryType    string
	BillOfLading    string
	StatusChangedAt string
}
