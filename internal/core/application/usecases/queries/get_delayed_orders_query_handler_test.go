package queries_test

import (
	"errors"
	"testing"
	"time"

	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delayedOrders() []delivery.Order {
	return append(sampleOrders(), delivery.Order{DeliveryNo: "A5", Status: "10", LoadingDate: "2024-01-04"})
}

func TestNewGetDelayedOrdersQuery_Limit(t *testing.T) {
	_, err := queries.NewGetDelayedOrdersQuery(queryNow, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetDelayedOrdersQuery(queryNow, queries.MaxDelayedOrdersLimit+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	q, err := queries.NewGetDelayedOrdersQuery(queryNow, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Limit())
}

func TestGetDelayedOrdersQueryHandler_Handle_SortedByDelay(t *testing.T) {
	ctx := t.Context()
	reader := new(MockDeliveryReader)
	reader.On("GetAll", ctx).Return(delayedOrders(), nil).Once()

	h := queries.NewGetDelayedOrdersQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})
	q, err := queries.NewGetDelayedOrdersQuery(time.Time{}, 0)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Orders, 3)
	assert.Equal(t, "D1", resp.Orders[0].DeliveryNo)
	assert.Equal(t, 3, resp.Orders[0].DelayDays)
	assert.Equal(t, "DHL", resp.Orders[0].Agent)
	// Equal delays fall back to delivery number.
	assert.Equal(t, "A5", resp.Orders[1].DeliveryNo)
	assert.Equal(t, "D2", resp.Orders[2].DeliveryNo)
	assert.Equal(t, delivery.UnassignedAgent, resp.Orders[1].Agent)
	reader.AssertExpectations(t)
}

func TestGetDelayedOrdersQueryHandler_Handle_Limit(t *testing.T) {
	ctx := t.Context()
	reader := new(MockDeliveryReader)
	reader.On("GetAll", ctx).Return(delayedOrders(), nil).Once()

	h := queries.NewGetDelayedOrdersQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})
	q, err := queries.NewGetDelayedOrdersQuery(queryNow, 1)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "D1", resp.Orders[0].DeliveryNo)
}

func TestGetDelayedOrdersQueryHandler_Handle_EmptyStore(t *testing.T) {
	ctx := t.Context()
	reader := new(MockDeliveryReader)
	reader.On("GetAll", ctx).Return([]delivery.Order{}, nil).Once()

	h := queries.NewGetDelayedOrdersQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})
	q, err := queries.NewGetDelayedOrdersQuery(queryNow, 0)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, q)

	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Orders)
}

func TestGetDelayedOrdersQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	boom := errors.New("boom")
	reader := new(MockDeliveryReader)
	reader.On("GetAll", ctx).Return(nil, boom).Once()

	h := queries.NewGetDelayedOrdersQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})
	q, err := queries.NewGetDelayedOrdersQuery(queryNow, 0)
	require.NoError(t, err)

	_, err = h.Handle(ctx, q)

	require.ErrorIs(t, err, boom)
}

func TestGetDelayedOrdersQueryHandler_Handle_NotConstructed(t *testing.T) {
	h := queries.NewGetDelayedOrdersQueryHandler(new(MockDeliveryReader), newProvider(t), kernel.FixedClock{At: queryNow})

	_, err := h.Handle(t.Context(), queries.GetDelayedOrdersQuery{})

	require.ErrorIs(t, err, queries.ErrGetDelayedOrdersQueryIsNotConstructed)
}
