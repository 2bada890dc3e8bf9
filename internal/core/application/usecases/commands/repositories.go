// Package commands contains the operations that change what the dashboard
// reports: importing delivery records and refreshing the published summary.
// Every command is built by its constructor and checked again by its handler.
package commands

import (
	"context"
	"time"

	"dashboard/internal/core/domain/model/summary"
	"dashboard/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides the delivery store within a transaction.
	DeliveryRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// BatchRepoFactory provides the import batch store within a transaction.
	BatchRepoFactory interface {
		ImportBatchRepository() ports.ImportBatchRepository
	}

	// ImportUoW spans the delivery upsert and its batch record.
	ImportUoW interface {
		TxManager
		DeliveryRepoFactory
		BatchRepoFactory
	}

	// ImportUoWFactory creates new import unit of work instances.
	ImportUoWFactory interface {
		Create() ImportUoW
	}

	// SummaryRecorder observes refresh outcomes. *metrics.Metrics implements it.
	SummaryRecorder interface {
		RecordAggregation(trigger string, duration time.Duration)
		RecordSummary(s *summary.Summary)
		RecordStaleSummary()
	}
)

type noopRecorder struct{}

func (noopRecorder) RecordAggregation(string, time.Duration) {}
func (noopRecorder) RecordSummary(*summary.Summary)          {}
func (noopRecorder) RecordStaleSummary()                     {}
