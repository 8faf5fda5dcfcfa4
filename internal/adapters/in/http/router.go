package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"oja/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// HealthCheck reports whether the service can serve traffic.
type HealthCheck func(ctx context.Context) error

// RouterConfig holds everything NewRouter wires into echo.
type RouterConfig struct {
	Server      *Server
	OpenAPI     []byte
	Logger      *slog.Logger
	HTTPMetrics *metrics.HTTP
	Metrics     http.Handler
	Health      HealthCheck
}

// NewRouter builds the echo instance serving the API, its Swagger UI, /health and /metrics.
func NewRouter(ctx context.Context, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx, cfg.OpenAPI)
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	registerSwagger(cfg.OpenAPI)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(cfg.Logger))
	if cfg.HTTPMetrics != nil {
		e.Use(cfg.HTTPMetrics.Middleware())
	}
	e.Use(validator)

	e.GET("/health", healthHandler(cfg.Health))
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, cfg.Server)
	return e, nil
}

func healthHandler(check HealthCheck) echo.HandlerFunc {
	return func(c echo.Context) error {
		if check != nil {
			if err := check(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	}
}

type openAPIDoc struct {
	raw []byte
}

func (d openAPIDoc) ReadDoc() string {
	return string(d.raw)
}

var swaggerOnce sync.Once

// registerSwagger publishes the contract to the swag registry read by echo-swagger.
// swag panics on duplicate names, so the first document registered wins.
func registerSwagger(raw []byte) {
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{raw: raw})
	})
}
