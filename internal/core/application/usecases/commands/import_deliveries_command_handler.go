package commands

import (
	"context"
	"fmt"

	"dashboard/internal/core/domain/model/importbatch"
	"dashboard/internal/core/domain/model/kernel"
)

// ImportDeliveriesResult describes a committed import.
type ImportDeliveriesResult struct {
	BatchID  kernel.UUID
	Accepted int
}

// ImportDeliveriesCommandHandler writes the orders and their batch record in
// one transaction, so a failed import leaves the store untouched.
type ImportDeliveriesCommandHandler struct {
	uowFactory ImportUoWFactory
	clock      kernel.Clock
}

func NewImportDeliveriesCommandHandler(uowFactory ImportUoWFactory, clock kernel.Clock) ImportDeliveriesCommandHandler {
	return ImportDeliveriesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle imports the command's orders. Accepted counts the rows written,
// which is lower than the input size when delivery numbers repeat.
func (h ImportDeliveriesCommandHandler) Handle(ctx context.Context, cmd ImportDeliveriesCommand) (ImportDeliveriesResult, error) {
	if err := cmd.Validate(); err != nil {
		return ImportDeliveriesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ImportDeliveriesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchID := kernel.NewUUID()
	accepted, err := uow.DeliveryOrderRepository().UpsertMany(ctx, cmd.Orders(), batchID)
	if err != nil {
		return ImportDeliveriesResult{}, fmt.Errorf("upsert deliveries: %w", err)
	}

	batch, err := importbatch.RestoreBatch(batchID, cmd.Source(), accepted, h.clock.Now())
	if err != nil {
		return ImportDeliveriesResult{}, err
	}
	if err = uow.ImportBatchRepository().Add(ctx, batch); err != nil {
		return ImportDeliveriesResult{}, fmt.Errorf("record import batch: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return ImportDeliveriesResult{}, err
	}

	return ImportDeliveriesResult{BatchID: batchID, Accepted: accepted}, nil
}
