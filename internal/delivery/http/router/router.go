// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pizzeria/internal/delivery/http/middleware"
	"pizzeria/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	OrderHandler      *handler.OrderHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	orderHandler      *handler.OrderHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		orderHandler:      params.OrderHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metricsMiddleware.Handler())

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/token", r.authHandler.Login)
		authGroup.POST("/refresh_token", r.authHandler.Refresh, r.authMiddleware.Authenticate)
	}

	// Order routes all require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/order", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListAllOrders, r.authMiddleware.RequireStaff)
		orderGroup.GET("/:id", r.orderHandler.GetOrder, r.authMiddleware.RequireStaff)
		orderGroup.GET("/user/orders", r.orderHandler.ListMyOrders)
		orderGroup.GET("/user/order/:id", r.orderHandler.GetMyOrder)
		orderGroup.PUT("/order/update/:id", r.orderHandler.UpdateOrder)
		orderGroup.PATCH("/order/update/:id", r.orderHandler.UpdateOrderStatus, r.authMiddleware.RequireStaff)
		orderGroup.DELETE("/order/delete/:id", r.orderHandler.DeleteOrder)
	}
}
