// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"titlecheck/internal/delivery/api/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler  *handler.AuthHandler
	TitleHandler *handler.TitleHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler  *handler.AuthHandler
	titleHandler *handler.TitleHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:  params.AuthHandler,
		titleHandler: params.TitleHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)

	e.GET("/check", r.titleHandler.Check)
}
