package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Backlog trend
	// (GET /backlog)
	GetBacklog(ctx echo.Context, params GetBacklogParams) error
	// Delayed orders
	// (GET /delays)
	GetDelays(ctx echo.Context, params GetDelaysParams) error
	// Import deliveries
	// (POST /deliveries/import)
	ImportDeliveries(ctx echo.Context) error
	// Compute summary
	// (GET /summary)
	GetSummary(ctx echo.Context, params GetSummaryParams) error
	// Latest summary
	// (GET /summary/latest)
	GetLatestSummary(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetBacklog converts echo context to params.
func (w *ServerInterfaceWrapper) GetBacklog(ctx echo.Context) error {
	var err error

	var params GetBacklogParams
	err = runtime.BindQueryParameter("form", true, false, "now", ctx.QueryParams(), &params.Now)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter now: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "window", ctx.QueryParams(), &params.Window)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter window: %s", err))
	}

	return w.Handler.GetBacklog(ctx, params)
}

// GetDelays converts echo context to params.
func (w *ServerInterfaceWrapper) GetDelays(ctx echo.Context) error {
	var err error

	var params GetDelaysParams
	err = runtime.BindQueryParameter("form", true, false, "now", ctx.QueryParams(), &params.Now)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter now: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetDelays(ctx, params)
}

// ImportDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ImportDeliveries(ctx echo.Context) error {
	return w.Handler.ImportDeliveries(ctx)
}

// GetSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetSummary(ctx echo.Context) error {
	var err error

	var params GetSummaryParams
	err = runtime.BindQueryParameter("form", true, false, "now", ctx.QueryParams(), &params.Now)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter now: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "country", ctx.QueryParams(), &params.Country)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter country: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "agent", ctx.QueryParams(), &params.Agent)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter agent: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "type", ctx.QueryParams(), &params.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter type: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.GetSummary(ctx, params)
}

// GetLatestSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetLatestSummary(ctx echo.Context) error {
	return w.Handler.GetLatestSummary(ctx)
}

// EchoRouter is the subset of echo routing used by RegisterHandlers.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/backlog", wrapper.GetBacklog)
	router.GET(baseURL+"/delays", wrapper.GetDelays)
	router.POST(baseURL+"/deliveries/import", wrapper.ImportDeliveries)
	router.GET(baseURL+"/summary", wrapper.GetSummary)
	router.GET(baseURL+"/summary/latest", wrapper.GetLatestSummary)
}
