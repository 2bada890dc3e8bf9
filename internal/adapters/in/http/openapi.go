package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dashboard/internal/adapters/in/http/docs"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator checks API requests against the swagger document served
// under /swagger.
type OpenAPIValidator struct {
	doc    *openapi3.T
	router routers.Router
}

// NewOpenAPIValidator converts the registered swagger 2.0 document to
// OpenAPI 3 and builds a router over it. Paths are prefixed with the
// document's base path.
func NewOpenAPIValidator() (*OpenAPIValidator, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc2); err != nil {
		return nil, fmt.Errorf("failed to parse swagger document: %w", err)
	}

	doc, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert swagger document: %w", err)
	}

	basePath := strings.TrimSuffix(doc2.BasePath, "/")
	paths := openapi3.NewPaths()
	for path, item := range doc.Paths.Map() {
		paths.Set(basePath+path, item)
	}
	doc.Paths = paths
	doc.Servers = nil

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	return &OpenAPIValidator{doc: doc, router: router}, nil
}

// ValidateRequest validates req against the operation it routes to.
// Requests outside the document return routers.ErrPathNotFound or
// routers.ErrMethodNotAllowed.
func (v *OpenAPIValidator) ValidateRequest(ctx context.Context, req *http.Request) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return err
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			MultiError: true,
		},
	}
	if err := openapi3filter.ValidateRequest(ctx, input); err != nil {
		return fmt.Errorf("request validation failed: %w", err)
	}
	return nil
}

// Middleware rejects documented requests that do not match their schema.
// Undocumented routes fall through to echo's own routing.
func (v *OpenAPIValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := v.ValidateRequest(c.Request().Context(), c.Request())
			switch {
			case err == nil:
				return next(c)
			case errors.Is(err, routers.ErrPathNotFound), errors.Is(err, routers.ErrMethodNotAllowed):
				return next(c)
			default:
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}
		}
	}
}
