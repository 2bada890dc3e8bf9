package queries

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/summary"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

// MaxTrendWindow bounds the moving-average window of a backlog query.
const MaxTrendWindow = 90

var ErrGetBacklogTrendQueryIsNotConstructed = errors.New(
	"GetBacklogTrendQuery must be created via NewGetBacklogTrendQuery constructor",
)

// GetBacklogTrendQuery returns the per-agent backlog with its moving average.
type GetBacklogTrendQuery struct {
	now    time.Time
	window int

	guard guard.ConstructorGuard
}

// NewGetBacklogTrendQuery builds the query. A zero window uses the engine's
// configured window.
func NewGetBacklogTrendQuery(now time.Time, window int) (GetBacklogTrendQuery, error) {
	if window < 0 || window > MaxTrendWindow {
		return GetBacklogTrendQuery{}, errs.NewValueIsOutOfRangeError("window", window, 0, MaxTrendWindow)
	}
	return GetBacklogTrendQuery{
		now:    now,
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetBacklogTrendQuery) Validate() error {
	return q.guard.Validate(ErrGetBacklogTrendQueryIsNotConstructed)
}

func (q GetBacklogTrendQuery) Now() time.Time {
	return q.now
}

func (q GetBacklogTrendQuery) Window() int {
	return q.window
}

// GetBacklogTrendQueryResponse is the backlog chart.
type GetBacklogTrendQueryResponse struct {
	Window int
	Agents []string
	Rows   []summary.BacklogRow
	Trend  []summary.TrendPoint
}
