package queries_test

import (
	"errors"
	"testing"
	"time"

	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queryNow = time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)

func sampleOrders() []delivery.Order {
	return []delivery.Order{
		{DeliveryNo: "D1", Status: "10", LoadingDate: "2024-01-03", Country: "de", ForwardingAgent: "DHL"},
		{DeliveryNo: "D2", Status: "30", LoadingDate: "2024-01-04", Country: "FR", ForwardingAgent: "UPS"},
		{DeliveryNo: "D3", Status: "50", LoadingDate: "2024-01-05", Country: "DE", ForwardingAgent: "DHL"},
		{DeliveryNo: "D4", Status: "10", LoadingDate: "2024-01-06", Country: "DE"},
	}
}

func TestGetSummaryQueryHandler_Handle_Unfiltered(t *testing.T) {
	ctx := t.Context()
	reader := new(MockDeliveryReader)
	reader.On("GetAll", ctx).Return(sampleOrders(), nil).Once()

	h := queries.NewGetSummaryQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})

	s, err := h.Handle(ctx, queries.NewGetSummaryQuery(time.Time{}, delivery.Filter{}))

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.DoneTotal)
	assert.Equal(t, queryNow, s.GeneratedAt)
	reader.AssertExpectations(t)
}

func TestGetSummaryQueryHandler_Handle_Filtered(t *testing.T) {
	ctx := t.Context()
	filter, err := delivery.NewFilter([]string{"de"}, nil, nil, "2024-01-04", "")
	require.NoError(t, err)

	// The reader only narrows by country; the date range is applied afterwards.
	var de []delivery.Order
	for _, o := range sampleOrders() {
		if o.Country != "FR" {
			de = append(de, o)
		}
	}
	reader := new(MockDeliveryReader)
	reader.On("GetFiltered", ctx, filter).Return(de, nil).Once()

	h := queries.NewGetSummaryQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})

	s, err := h.Handle(ctx, queries.NewGetSummaryQuery(queryNow, filter))

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, map[string]int{"DE": 2}, s.CountsByCountry)
	reader.AssertExpectations(t)
}

func TestGetSummaryQueryHandler_Handle_NoMatch(t *testing.T) {
	ctx := t.Context()
	filter, err := delivery.NewFilter(nil, nil, nil, "2025-01-01", "")
	require.NoError(t, err)

	reader := new(MockDeliveryReader)
	reader.On("GetFiltered", ctx, filter).Return(sampleOrders(), nil).Once()

	h := queries.NewGetSummaryQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})

	s, err := h.Handle(ctx, queries.NewGetSummaryQuery(queryNow, filter))

	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestGetSummaryQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	boom := errors.New("boom")
	reader := new(MockDeliveryReader)
	reader.On("GetAll", ctx).Return(nil, boom).Once()

	h := queries.NewGetSummaryQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})

	s, err := h.Handle(ctx, queries.NewGetSummaryQuery(queryNow, delivery.Filter{}))

	require.ErrorIs(t, err, boom)
	assert.Nil(t, s)
}

func TestGetSummaryQueryHandler_Handle_NotConstructed(t *testing.T) {
	reader := new(MockDeliveryReader)
	h := queries.NewGetSummaryQueryHandler(reader, newProvider(t), kernel.FixedClock{At: queryNow})

	_, err := h.Handle(t.Context(), queries.GetSummaryQuery{})

	require.ErrorIs(t, err, queries.ErrGetSummaryQueryIsNotConstructed)
	reader.AssertNotCalled(t, "GetAll")
}
