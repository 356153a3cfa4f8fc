// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dropmarks/internal/delivery/http/middleware"
	"dropmarks/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PrincipalHandler *handler.PrincipalHandler
	BasicAuth        *middleware.BasicAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	principalHandler *handler.PrincipalHandler
	basicAuth        *middleware.BasicAuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		principalHandler: params.PrincipalHandler,
		basicAuth:        params.BasicAuth,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.GET("/me", r.principalHandler.Me, r.basicAuth.Authenticate)
}
