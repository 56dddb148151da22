// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskman/internal/delivery/http/middleware"
	"taskman/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential endpoints live at the root, unauthenticated.
	e.POST("/signup", r.authHandler.SignUp)
	e.POST("/login", r.authHandler.Login)

	// Task routes require a valid token. Tasks carry no owner, so every
	// authenticated caller sees the same collection.
	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.authMiddleware.Authenticate)
	{
		taskGroup.POST("", r.taskHandler.CreateTask)
		taskGroup.GET("", r.taskHandler.ListTasks)
		taskGroup.GET("/:id", r.taskHandler.GetTask)
		taskGroup.PUT("/:id", r.taskHandler.UpdateTask)
		taskGroup.DELETE("/:id", r.taskHandler.DeleteTask)
	}
}
