package http

import (
	"errors"
	"log/slog"
	"net/http"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/resilience"

	"github.com/labstack/echo/v4"
)

// ImportRecorder observes import outcomes. *metrics.Metrics implements it.
type ImportRecorder interface {
	RecordImport(source string, accepted int, success bool)
}

type noopImportRecorder struct{}

func (noopImportRecorder) RecordImport(string, int, bool) {}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	importDeliveriesHandler commands.ImportDeliveriesCommandHandler
	refreshSummaryHandler   commands.RefreshSummaryCommandHandler

	// Query handlers
	getSummaryHandler       queries.GetSummaryQueryHandler
	getLatestSummaryHandler queries.GetLatestSummaryQueryHandler
	getDelayedOrdersHandler queries.GetDelayedOrdersQueryHandler
	getBacklogTrendHandler  queries.GetBacklogTrendQueryHandler

	recorder ImportRecorder
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers. recorder and logger may be nil.
func NewServer(
	importDeliveriesHandler commands.ImportDeliveriesCommandHandler,
	refreshSummaryHandler commands.RefreshSummaryCommandHandler,
	getSummaryHandler queries.GetSummaryQueryHandler,
	getLatestSummaryHandler queries.GetLatestSummaryQueryHandler,
	getDelayedOrdersHandler queries.GetDelayedOrdersQueryHandler,
	getBacklogTrendHandler queries.GetBacklogTrendQueryHandler,
	recorder ImportRecorder,
	logger *slog.Logger,
) *Server {
	if recorder == nil {
		recorder = noopImportRecorder{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		importDeliveriesHandler: importDeliveriesHandler,
		refreshSummaryHandler:   refreshSummaryHandler,
		getSummaryHandler:       getSummaryHandler,
		getLatestSummaryHandler: getLatestSummaryHandler,
		getDelayedOrdersHandler: getDelayedOrdersHandler,
		getBacklogTrendHandler:  getBacklogTrendHandler,
		recorder:                recorder,
		logger:                  logger.With("component", "http_server"),
	}
}

// GetSummary handles GET /api/v1/summary - aggregates the filtered store.
//
//	@Summary	Compute summary
//	@Tags		analytics
//	@Produce	json
//	@Param		now		query		string		false	"Evaluation instant"	format(date-time)
//	@Param		country	query		[]string	false	"Destination country"	collectionFormat(multi)
//	@Param		agent	query		[]string	false	"Forwarding agent"		collectionFormat(multi)
//	@Param		type	query		[]string	false	"Delivery type"			collectionFormat(multi)
//	@Param		from	query		string		false	"First loading day"
//	@Param		to		query		string		false	"Last loading day"
//	@Success	200		{object}	summary.Summary
//	@Success	204
//	@Failure	400		{object}	Error
//	@Failure	503		{object}	Error
//	@Router		/summary [get]
func (s *Server) GetSummary(ctx echo.Context, params GetSummaryParams) error {
	filter, err := delivery.NewFilter(
		valueOf(params.Country), valueOf(params.Agent), valueOf(params.Type),
		valueOf(params.From), valueOf(params.To),
	)
	if err != nil {
		return s.fail(ctx, err, "Invalid summary filter")
	}

	result, err := s.getSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetSummaryQuery(valueOf(params.Now), filter))
	if err != nil {
		return s.fail(ctx, err, "Failed to compute summary")
	}
	if result == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetLatestSummary handles GET /api/v1/summary/latest - returns the published summary.
//
//	@Summary	Latest summary
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{object}	summary.Summary
//	@Success	204
//	@Router		/summary/latest [get]
func (s *Server) GetLatestSummary(ctx echo.Context) error {
	result, err := s.getLatestSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetLatestSummaryQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to read latest summary")
	}
	if result == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetDelays handles GET /api/v1/delays - lists delayed open orders.
//
//	@Summary	Delayed orders
//	@Tags		analytics
//	@Produce	json
//	@Param		now		query		string	false	"Evaluation instant"	format(date-time)
//	@Param		limit	query		int		false	"Page size"				minimum(0)	maximum(1000)
//	@Success	200		{object}	DelayedOrdersResponse
//	@Failure	400		{object}	Error
//	@Failure	503		{object}	Error
//	@Router		/delays [get]
func (s *Server) GetDelays(ctx echo.Context, params GetDelaysParams) error {
	query, err := queries.NewGetDelayedOrdersQuery(valueOf(params.Now), valueOf(params.Limit))
	if err != nil {
		return s.fail(ctx, err, "Invalid delay query")
	}

	result, err := s.getDelayedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to detect delayed orders")
	}

	return ctx.JSON(http.StatusOK, newDelayedOrdersResponse(result))
}

// GetBacklog handles GET /api/v1/backlog - returns the backlog matrix and its trend.
//
//	@Summary	Backlog trend
//	@Tags		analytics
//	@Produce	json
//	@Param		now		query		string	false	"Evaluation instant"	format(date-time)
//	@Param		window	query		int		false	"Moving-average window"	minimum(0)	maximum(90)
//	@Success	200		{object}	BacklogResponse
//	@Success	204
//	@Failure	400		{object}	Error
//	@Failure	503		{object}	Error
//	@Router		/backlog [get]
func (s *Server) GetBacklog(ctx echo.Context, params GetBacklogParams) error {
	query, err := queries.NewGetBacklogTrendQuery(valueOf(params.Now), valueOf(params.Window))
	if err != nil {
		return s.fail(ctx, err, "Invalid backlog query")
	}

	result, err := s.getBacklogTrendHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to track backlog")
	}
	if result == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, BacklogResponse{
		Window: result.Window,
		Agents: result.Agents,
		Rows:   result.Rows,
		Trend:  result.Trend,
	})
}

// ImportDeliveries handles POST /api/v1/deliveries/import - upserts records
// and refreshes the published summary.
//
//	@Summary	Import deliveries
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ImportDeliveriesRequest	true	"Import batch"
//	@Success	201		{object}	ImportDeliveriesResponse
//	@Failure	400		{object}	Error
//	@Failure	500		{object}	Error
//	@Router		/deliveries/import [post]
func (s *Server) ImportDeliveries(ctx echo.Context) error {
	var req ImportDeliveriesRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid import: " + err.Error(),
		})
	}

	orders := make([]delivery.Order, len(req.Orders))
	for i, o := range req.Orders {
		orders[i] = o.toDomain()
	}

	cmd, err := commands.NewImportDeliveriesCommand(req.Source, orders)
	if err != nil {
		return s.fail(ctx, err, "Invalid import")
	}

	reqCtx := ctx.Request().Context()
	result, err := s.importDeliveriesHandler.Handle(reqCtx, cmd)
	if err != nil {
		s.recorder.RecordImport(cmd.Source(), 0, false)
		return s.fail(ctx, err, "Failed to import deliveries")
	}
	s.recorder.RecordImport(cmd.Source(), result.Accepted, true)

	refresh, err := commands.NewRefreshSummaryCommand(commands.TriggerImport)
	if err == nil {
		_, err = s.refreshSummaryHandler.Handle(reqCtx, refresh)
	}
	if err != nil {
		// The import is committed; the next scheduled refresh picks it up.
		s.logger.WarnContext(reqCtx, "summary refresh after import failed", "batch_id", result.BatchID.String(), "error", err)
	}

	return ctx.JSON(http.StatusCreated, ImportDeliveriesResponse{
		BatchID:  result.BatchID.String(),
		Accepted: result.Accepted,
	})
}

func (s *Server) fail(ctx echo.Context, err error, message string) error {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	} else {
		message += ": " + err.Error()
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, resilience.ErrCircuitOpen):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func valueOf[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
