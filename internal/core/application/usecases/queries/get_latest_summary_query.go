package queries

import (
	"errors"

	"dashboard/internal/pkg/guard"
)

var ErrGetLatestSummaryQueryIsNotConstructed = errors.New(
	"GetLatestSummaryQuery must be created via NewGetLatestSummaryQuery constructor",
)

// GetLatestSummaryQuery reads the summary published by the last refresh.
type GetLatestSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLatestSummaryQuery() GetLatestSummaryQuery {
	return GetLatestSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLatestSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestSummaryQueryIsNotConstructed)
}
