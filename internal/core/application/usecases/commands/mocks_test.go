package commands_test

import (
	"context"
	"time"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/importbatch"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/summary"
	"dashboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) GetAll(ctx context.Context) ([]delivery.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Order), args.Error(1)
}

func (m *MockDeliveryRepository) GetFiltered(ctx context.Context, filter delivery.Filter) ([]delivery.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Order), args.Error(1)
}

func (m *MockDeliveryRepository) UpsertMany(ctx context.Context, orders []delivery.Order, batch kernel.UUID) (int, error) {
	args := m.Called(ctx, orders, batch)
	return args.Int(0), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, batch *importbatch.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*importbatch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importbatch.Batch), args.Error(1)
}

type MockImportUoW struct{ mock.Mock }

func (m *MockImportUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockImportUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockImportUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockImportUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryOrderRepository)
}

func (m *MockImportUoW) ImportBatchRepository() ports.ImportBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.ImportBatchRepository)
}

type MockImportUoWFactory struct{ mock.Mock }

func (m *MockImportUoWFactory) Create() commands.ImportUoW {
	args := m.Called()
	return args.Get(0).(commands.ImportUoW)
}

type MockSummaryRecorder struct{ mock.Mock }

func (m *MockSummaryRecorder) RecordAggregation(trigger string, duration time.Duration) {
	m.Called(trigger, duration)
}

func (m *MockSummaryRecorder) RecordSummary(s *summary.Summary) {
	m.Called(s)
}

func (m *MockSummaryRecorder) RecordStaleSummary() {
	m.Called()
}
