package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	api "dashboard/internal/adapters/in/http"
	"dashboard/internal/core/application/engine"
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/importbatch"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/metrics"
	"dashboard/internal/pkg/resilience"
	"dashboard/internal/pkg/settings"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)

// memStore is an in-memory delivery store that also acts as its own unit of work.
type memStore struct {
	mu      sync.Mutex
	orders  map[string]delivery.Order
	batches []*importbatch.Batch
	readErr error
}

func newMemStore(orders ...delivery.Order) *memStore {
	s := &memStore{orders: make(map[string]delivery.Order)}
	for _, o := range orders {
		s.orders[o.DeliveryNo] = o
	}
	return s
}

func (s *memStore) GetAll(context.Context) ([]delivery.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := make([]delivery.Order, 0, len(s.orders))
	for _, no := range slices.Sorted(maps.Keys(s.orders)) {
		out = append(out, s.orders[no])
	}
	return out, nil
}

// GetFiltered leaves narrowing to the query handler's in-memory pass.
func (s *memStore) GetFiltered(ctx context.Context, _ delivery.Filter) ([]delivery.Order, error) {
	return s.GetAll(ctx)
}

func (s *memStore) UpsertMany(_ context.Context, orders []delivery.Order, _ kernel.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		s.orders[o.DeliveryNo] = o
		seen[o.DeliveryNo] = struct{}{}
	}
	return len(seen), nil
}

func (s *memStore) Add(_ context.Context, batch *importbatch.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, batch)
	return nil
}

func (s *memStore) Get(_ context.Context, id kernel.UUID) (*importbatch.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.batches {
		if b.ID().IsEqual(id) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("batch %s not found", id)
}

func (s *memStore) Begin(context.Context) error    { return nil }
func (s *memStore) Commit(context.Context) error   { return nil }
func (s *memStore) Rollback(context.Context) error { return nil }

func (s *memStore) DeliveryOrderRepository() ports.DeliveryOrderRepository { return s }
func (s *memStore) ImportBatchRepository() ports.ImportBatchRepository     { return s }

func (s *memStore) Create() commands.ImportUoW { return s }

type fixture struct {
	echo     *echo.Echo
	store    *memStore
	snapshot *engine.Snapshot
}

func newFixture(t *testing.T, orders ...delivery.Order) fixture {
	t.Helper()

	cfg := settings.Default()
	cfg.Timezone = "UTC"
	engines, err := engine.NewProvider(cfg, nil)
	require.NoError(t, err)

	store := newMemStore(orders...)
	snapshot := engine.NewSnapshot()
	clock := kernel.FixedClock{At: testNow}
	m := metrics.New()

	server := api.NewServer(
		commands.NewImportDeliveriesCommandHandler(store, clock),
		commands.NewRefreshSummaryCommandHandler(store, engines, snapshot, clock, m, nil),
		queries.NewGetSummaryQueryHandler(store, engines, clock),
		queries.NewGetLatestSummaryQueryHandler(snapshot),
		queries.NewGetDelayedOrdersQueryHandler(store, engines, clock),
		queries.NewGetBacklogTrendQueryHandler(store, engines, clock),
		m,
		nil,
	)

	e, err := api.NewRouter(server, m, nil)
	require.NoError(t, err)

	return fixture{echo: e, store: store, snapshot: snapshot}
}

func (f fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func sampleOrders() []delivery.Order {
	return []delivery.Order{
		{DeliveryNo: "D1", Status: "10", LoadingDate: "2024-01-03", Country: "DE", ForwardingAgent: "DHL"},
		{DeliveryNo: "D2", Status: "30", LoadingDate: "2024-01-04", Country: "FR", ForwardingAgent: "UPS"},
		{DeliveryNo: "D3", Status: "50", LoadingDate: "2024-01-05", Country: "DE", ForwardingAgent: "DHL"},
		{DeliveryNo: "D4", Status: "10", LoadingDate: "2024-01-06", Country: "DE"},
	}
}

func TestHealth(t *testing.T) {
	rec := newFixture(t).do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestGetSummary(t *testing.T) {
	f := newFixture(t, sampleOrders()...)

	rec := f.do(t, http.MethodGet, "/api/v1/summary", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[map[string]any](t, rec)
	assert.InDelta(t, 4, body["total"], 0)
	assert.InDelta(t, 1, body["doneTotal"], 0)
	assert.InDelta(t, 3, body["remainingTotal"], 0)
	assert.Equal(t, "2024-01-06", body["today"])
}

func TestGetSummary_Filtered(t *testing.T) {
	f := newFixture(t, sampleOrders()...)

	rec := f.do(t, http.MethodGet, "/api/v1/summary?country=fr&country=PL", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[map[string]any](t, rec)
	assert.InDelta(t, 1, body["total"], 0)
	assert.Equal(t, map[string]any{"FR": float64(1)}, body["countsByCountry"])
}

func TestGetSummary_NoContent(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/summary", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetSummary_BadRequest(t *testing.T) {
	f := newFixture(t, sampleOrders()...)

	tests := map[string]string{
		"reversed range": "/api/v1/summary?from=2024-01-05&to=2024-01-01",
		"bad day":        "/api/v1/summary?from=05.01.2024",
		"bad now":        "/api/v1/summary?now=yesterday",
		"unknown type":   "/api/v1/summary?type=crate",
	}
	for name, target := range tests {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, target, "")

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			body := decode[api.Error](t, rec)
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestGetSummary_StoreUnavailable(t *testing.T) {
	f := newFixture(t, sampleOrders()...)
	f.store.readErr = fmt.Errorf("deliveries: %w", resilience.ErrCircuitOpen)

	rec := f.do(t, http.MethodGet, "/api/v1/summary", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, http.StatusServiceUnavailable, decode[api.Error](t, rec).Code)
}

func TestGetSummary_InternalError(t *testing.T) {
	f := newFixture(t, sampleOrders()...)
	f.store.readErr = fmt.Errorf("connection reset")

	rec := f.do(t, http.MethodGet, "/api/v1/summary", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal causes are logged, not echoed.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestGetDelays(t *testing.T) {
	f := newFixture(t, sampleOrders()...)

	rec := f.do(t, http.MethodGet, "/api/v1/delays?now=2024-01-06T12:00:00Z&limit=1", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[api.DelayedOrdersResponse](t, rec)
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Orders, 1)
	assert.Equal(t, "D1", body.Orders[0].DeliveryNo)
	assert.Equal(t, 3, body.Orders[0].DelayDays)
	assert.Equal(t, "DHL", body.Orders[0].ForwardingAgent)
}

func TestGetDelays_LimitOutOfRange(t *testing.T) {
	f := newFixture(t, sampleOrders()...)

	rec := f.do(t, http.MethodGet, "/api/v1/delays?limit=5000", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBacklog(t *testing.T) {
	f := newFixture(t, sampleOrders()...)

	rec := f.do(t, http.MethodGet, "/api/v1/backlog?window=2", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[api.BacklogResponse](t, rec)
	assert.Equal(t, 2, body.Window)
	assert.Equal(t, []string{"DHL", "UPS", delivery.UnassignedAgent}, body.Agents)
	require.Len(t, body.Rows, 4)
	assert.Nil(t, body.Rows[0].Deviation)
	require.Len(t, body.Trend, 4)
	assert.InDelta(t, 2.5, body.Trend[3].Average, 1e-9)
}

func TestGetBacklog_NoContent(t *testing.T) {
	rec := newFixture(t).do(t, http.MethodGet, "/api/v1/backlog", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestImportDeliveries_PublishesSummary(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/summary/latest", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/deliveries/import", `{
		"source": "wms",
		"orders": [
			{"deliveryNo": "N1", "status": "10", "loadingDate": "2024-01-05", "totalWeight": "12.5"},
			{"deliveryNo": "N2", "status": "50", "loadingDate": "2024-01-06", "totalWeight": 3},
			{"deliveryNo": "N1", "status": "30", "loadingDate": "2024-01-05"}
		]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[api.ImportDeliveriesResponse](t, rec)
	assert.Equal(t, 2, body.Accepted)
	_, err := kernel.UUIDFromString(body.BatchID)
	require.NoError(t, err)

	require.Len(t, f.store.batches, 1)
	assert.Equal(t, "wms", f.store.batches[0].Source())
	assert.Equal(t, "30", f.store.orders["N1"].Status)

	rec = f.do(t, http.MethodGet, "/api/v1/summary/latest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	latest := decode[map[string]any](t, rec)
	assert.InDelta(t, 2, latest["total"], 0)
	assert.InDelta(t, 1, latest["doneTotal"], 0)
}

func TestImportDeliveries_Invalid(t *testing.T) {
	f := newFixture(t)

	tests := map[string]string{
		"malformed json":   `{"source": `,
		"missing source":   `{"orders": [{"deliveryNo": "N1", "status": "10"}]}`,
		"no orders":        `{"source": "wms", "orders": []}`,
		"blank deliveryNo": `{"source": "wms", "orders": [{"deliveryNo": "", "status": "10"}]}`,
		"negative weight":  `{"source": "wms", "orders": [{"deliveryNo": "N1", "totalWeight": "-1"}]}`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/v1/deliveries/import", payload)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, http.StatusBadRequest, decode[api.Error](t, rec).Code)
		})
	}
	assert.Empty(t, f.store.batches)
	assert.Empty(t, f.store.orders)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, sampleOrders()...)
	f.do(t, http.MethodGet, "/api/v1/summary", "")

	rec := f.do(t, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dashboard_http_requests_total{method="GET",path="/api/v1/summary",status="200"} 1`)
}

func TestSwaggerDocument(t *testing.T) {
	rec := newFixture(t).do(t, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Delivery Dashboard API")
	assert.Contains(t, rec.Body.String(), "/deliveries/import")
}
