package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dashboard/internal/core/application/engine"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/summary"
	"dashboard/internal/core/ports"
)

// RefreshSummaryCommandHandler aggregates the full order snapshot at the
// clock's current instant and publishes the result.
type RefreshSummaryCommandHandler struct {
	reader   ports.DeliveryOrderReader
	engines  *engine.Provider
	snapshot *engine.Snapshot
	clock    kernel.Clock
	recorder SummaryRecorder
	logger   *slog.Logger
}

// NewRefreshSummaryCommandHandler wires the handler. recorder and logger may be nil.
func NewRefreshSummaryCommandHandler(
	reader ports.DeliveryOrderReader,
	engines *engine.Provider,
	snapshot *engine.Snapshot,
	clock kernel.Clock,
	recorder SummaryRecorder,
	logger *slog.Logger,
) RefreshSummaryCommandHandler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return RefreshSummaryCommandHandler{
		reader:   reader,
		engines:  engines,
		snapshot: snapshot,
		clock:    clock,
		recorder: recorder,
		logger:   logger.With("component", "refresh-summary"),
	}
}

// Handle returns the freshly computed summary, or nil when the store is
// empty. A result that lost the race against a newer refresh is returned but
// not published.
func (h RefreshSummaryCommandHandler) Handle(ctx context.Context, cmd RefreshSummaryCommand) (*summary.Summary, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	orders, err := h.reader.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load deliveries: %w", err)
	}

	started := time.Now()
	s := h.engines.Current().Aggregate(orders, now)
	h.recorder.RecordAggregation(cmd.Trigger(), time.Since(started))

	if s == nil {
		h.logger.InfoContext(ctx, "No deliveries to summarize", "trigger", cmd.Trigger())
		return nil, nil
	}

	if !h.snapshot.Publish(s) {
		h.recorder.RecordStaleSummary()
		h.logger.WarnContext(ctx, "Discarded stale summary",
			"trigger", cmd.Trigger(),
			"now", now,
		)
		return s, nil
	}

	h.recorder.RecordSummary(s)
	h.logger.InfoContext(ctx, "Summary published",
		"trigger", cmd.Trigger(),
		"total", s.Total,
		"done", s.DoneTotal,
		"delayed", len(s.DelayedOrders),
		"skipped", s.Diagnostics.SkippedRecords,
	)
	return s, nil
}
