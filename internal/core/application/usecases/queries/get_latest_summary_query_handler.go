package queries

import (
	"context"

	"dashboard/internal/core/application/engine"
	"dashboard/internal/core/domain/model/summary"
)

type GetLatestSummaryQueryHandler struct {
	snapshot *engine.Snapshot
}

func NewGetLatestSummaryQueryHandler(snapshot *engine.Snapshot) GetLatestSummaryQueryHandler {
	return GetLatestSummaryQueryHandler{snapshot: snapshot}
}

// Handle returns nil until the first refresh has published a summary.
func (h GetLatestSummaryQueryHandler) Handle(_ context.Context, query GetLatestSummaryQuery) (*summary.Summary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.snapshot.Latest(), nil
}
