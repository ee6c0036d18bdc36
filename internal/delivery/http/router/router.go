// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hub/internal/delivery/http/middleware"
	"hub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	LikeHandler         *handler.LikeHandler
	TopicHandler        *handler.TopicHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	likeHandler         *handler.LikeHandler
	topicHandler        *handler.TopicHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		likeHandler:         params.LikeHandler,
		topicHandler:        params.TopicHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Auth routes. Registration is open to unauthenticated devices but gated
	// by the shared app key; refresh authenticates via the presented token.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.authMiddleware.RequireAppKey)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Like routes require an authenticated device session
	likeGroup := api.Group("/like")
	likeGroup.Use(r.authMiddleware.Authenticate)
	{
		likeGroup.POST("", r.likeHandler.Toggle)
		likeGroup.GET("", r.likeHandler.Status)
		likeGroup.GET("/batch", r.likeHandler.BatchStatus)
	}

	// Topic routes: the list is public reference data, subscriptions are
	// per-account and need authentication
	topicGroup := api.Group("/topic")
	{
		topicGroup.GET("", r.topicHandler.List)
		topicGroup.POST("/subscribe", r.topicHandler.Subscribe, r.authMiddleware.Authenticate)
		topicGroup.GET("/subscriptions", r.topicHandler.Subscriptions, r.authMiddleware.Authenticate)
	}

	// Notification routes
	notificationGroup := api.Group("/notification")
	{
		notificationGroup.GET("", r.notificationHandler.List, r.authMiddleware.Authenticate)
		notificationGroup.POST("/dispatch", r.notificationHandler.Dispatch, r.authMiddleware.RequireAppKey)
	}
}
