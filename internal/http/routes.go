package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/ratelimit"
)

type RouteConfig struct {
	AllowedOrigins []string
	Limiter        ratelimit.Limiter
	Tokens         middleware.TokenResolver
	Logger         *zap.Logger
}

func Register(e *echo.Echo, h *Handler, cfg RouteConfig) {
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		ExposeHeaders: []string{echo.HeaderAuthorization},
		MaxAge:        600,
	}))

	e.GET("/health", h.Health)

	limit := middleware.RateLimiter(cfg.Limiter, cfg.Logger)
	bearer := middleware.BearerAuth(cfg.Tokens, cfg.Logger)
	e.POST("/graphql", h.GraphQL, limit, bearer)
	e.GET("/graphql", h.GraphQL, limit, bearer)
}
