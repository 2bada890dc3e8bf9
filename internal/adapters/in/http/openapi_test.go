package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "dashboard/internal/adapters/in/http"

	"github.com/getkin/kin-openapi/routers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIValidator_ValidateRequest(t *testing.T) {
	v, err := api.NewOpenAPIValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		wantErr bool
	}{
		{name: "summary", method: http.MethodGet, target: "/api/v1/summary?country=DE&country=FR"},
		{name: "latest", method: http.MethodGet, target: "/api/v1/summary/latest"},
		{name: "delays", method: http.MethodGet, target: "/api/v1/delays?limit=10"},
		{name: "limit too large", method: http.MethodGet, target: "/api/v1/delays?limit=1001", wantErr: true},
		{name: "limit not a number", method: http.MethodGet, target: "/api/v1/delays?limit=ten", wantErr: true},
		{name: "window too large", method: http.MethodGet, target: "/api/v1/backlog?window=91", wantErr: true},
		{
			name:   "import",
			method: http.MethodPost,
			target: "/api/v1/deliveries/import",
			body:   `{"source":"wms","orders":[{"deliveryNo":"D1","status":"10"}]}`,
		},
		{
			name:    "import without source",
			method:  http.MethodPost,
			target:  "/api/v1/deliveries/import",
			body:    `{"orders":[{"deliveryNo":"D1"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			} else {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			}

			err := v.ValidateRequest(t.Context(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpenAPIValidator_UnknownRoute(t *testing.T) {
	v, err := api.NewOpenAPIValidator()
	require.NoError(t, err)

	err = v.ValidateRequest(t.Context(), httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	require.ErrorIs(t, err, routers.ErrPathNotFound)
}
