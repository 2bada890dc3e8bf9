package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// HTTPRecorder observes served requests. *metrics.Metrics implements it.
type HTTPRecorder interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
	Handler() http.Handler
}

// NewRouter builds the echo instance: health probe, metrics, swagger UI and
// the validated API group.
func NewRouter(server ServerInterface, recorder HTTPRecorder, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	docValidator, err := NewOpenAPIValidator()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = errorHandler(logger.With("component", "http_router"))

	if recorder != nil {
		e.Use(metricsMiddleware(recorder))
		e.GET("/metrics", echo.WrapHandler(recorder.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, docValidator.Middleware())
	RegisterHandlers(api, server)

	return e, nil
}

// metricsMiddleware records every request under its route template.
func metricsMiddleware(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			recorder.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
			return nil
		}
	}
}

// errorHandler renders echo errors with the API's Error body.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled request error", "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
