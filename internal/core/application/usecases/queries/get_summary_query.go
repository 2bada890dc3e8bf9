package queries

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/pkg/guard"
)

var ErrGetSummaryQueryIsNotConstructed = errors.New(
	"GetSummaryQuery must be created via NewGetSummaryQuery constructor",
)

// GetSummaryQuery computes a summary over a filtered snapshot.
type GetSummaryQuery struct {
	now    time.Time
	filter delivery.Filter

	guard guard.ConstructorGuard
}

// NewGetSummaryQuery builds the query. A zero now means "as of the clock".
func NewGetSummaryQuery(now time.Time, filter delivery.Filter) GetSummaryQuery {
	return GetSummaryQuery{
		now:    now,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSummaryQueryIsNotConstructed)
}

func (q GetSummaryQuery) Now() time.Time {
	return q.now
}

func (q GetSummaryQuery) Filter() delivery.Filter {
	return q.filter
}
