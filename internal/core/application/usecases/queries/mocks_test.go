package queries_test

import (
	"context"
	"testing"

	"dashboard/internal/core/application/engine"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/pkg/settings"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryReader struct{ mock.Mock }

func (m *MockDeliveryReader) GetAll(ctx context.Context) ([]delivery.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Order), args.Error(1)
}

func (m *MockDeliveryReader) GetFiltered(ctx context.Context, filter delivery.Filter) ([]delivery.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Order), args.Error(1)
}

func newProvider(t *testing.T) *engine.Provider {
	t.Helper()
	s := settings.Default()
	s.Timezone = "UTC"
	p, err := engine.NewProvider(s, nil)
	require.NoError(t, err)
	return p
}
