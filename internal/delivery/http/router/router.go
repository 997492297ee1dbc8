// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"yatai/internal/delivery/http/middleware"
	"yatai/internal/delivery/http/router/handler"
	"yatai/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ProfileHandler     *handler.ProfileHandler
	EventHandler       *handler.EventHandler
	ApplicationHandler *handler.ApplicationHandler
	DocumentHandler    *handler.DocumentHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	eventHandler       *handler.EventHandler
	applicationHandler *handler.ApplicationHandler
	documentHandler    *handler.DocumentHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		profileHandler:     params.ProfileHandler,
		eventHandler:       params.EventHandler,
		applicationHandler: params.ApplicationHandler,
		documentHandler:    params.DocumentHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public event browsing for the LIFF front end
	e.GET("/events", r.eventHandler.ListPublishedEvents)
	e.GET("/events/:id", r.eventHandler.GetEvent)
	e.GET("/events/:id/qr", r.eventHandler.EventQR)

	// Routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.authHandler.Me)
	}

	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/verification", r.profileHandler.SubmitForVerification)
	}

	// Reviewer decision endpoint; stores must not be able to decide their
	// own verification, so the reviewer side is organizer-gated.
	profilesGroup := e.Group("/profiles")
	profilesGroup.Use(r.authMiddleware.Authenticate)
	profilesGroup.Use(r.authMiddleware.RequireRole(entity.RoleOrganizer))
	{
		profilesGroup.POST("/:id/verification/decision", r.profileHandler.DecideVerification)
	}

	// Organizer-side event management
	organizerEvents := e.Group("/organizer/events")
	organizerEvents.Use(r.authMiddleware.Authenticate)
	organizerEvents.Use(r.authMiddleware.RequireRole(entity.RoleOrganizer))
	{
		organizerEvents.GET("", r.eventHandler.ListOrganizerEvents)
		organizerEvents.POST("", r.eventHandler.CreateEvent)
		organizerEvents.PUT("/:id", r.eventHandler.UpdateEvent)
		organizerEvents.POST("/:id/publish", r.eventHandler.PublishEvent)
		organizerEvents.POST("/:id/cancel", r.eventHandler.CancelEvent)
		organizerEvents.POST("/:id/complete", r.eventHandler.CompleteEvent)
		organizerEvents.POST("/:id/image", r.eventHandler.AttachMainImage)
		organizerEvents.GET("/:id/applications", r.applicationHandler.ListForEvent)
	}

	// Store-side application flow
	storeGroup := e.Group("/store")
	storeGroup.Use(r.authMiddleware.Authenticate)
	storeGroup.Use(r.authMiddleware.RequireRole(entity.RoleStore))
	{
		storeGroup.POST("/events/:id/applications", r.applicationHandler.Apply)
		storeGroup.GET("/applications", r.applicationHandler.ListForStore)
		storeGroup.POST("/applications/:id/cancel", r.applicationHandler.Cancel)
	}

	applicationsGroup := e.Group("/applications")
	applicationsGroup.Use(r.authMiddleware.Authenticate)
	applicationsGroup.Use(r.authMiddleware.RequireRole(entity.RoleOrganizer))
	{
		applicationsGroup.POST("/:id/decision", r.applicationHandler.Decide)
	}

	// Document upload and classification
	documentsGroup := e.Group("/documents")
	documentsGroup.Use(r.authMiddleware.Authenticate)
	{
		documentsGroup.GET("", r.documentHandler.List)
		documentsGroup.POST("", r.documentHandler.Upload)
		documentsGroup.DELETE("/:id", r.documentHandler.Delete)
		documentsGroup.POST("/:id/classify", r.documentHandler.Classify)
	}
}
