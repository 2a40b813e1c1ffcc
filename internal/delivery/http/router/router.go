// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"borgo/internal/delivery/http/middleware"
	"borgo/internal/delivery/http/router/handler"
	"borgo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DirectoryHandler    *handler.DirectoryHandler
	CategoryHandler     *handler.CategoryHandler
	RegistrationHandler *handler.RegistrationHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	directoryHandler    *handler.DirectoryHandler
	categoryHandler     *handler.CategoryHandler
	registrationHandler *handler.RegistrationHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		directoryHandler:    params.DirectoryHandler,
		categoryHandler:     params.CategoryHandler,
		registrationHandler: params.RegistrationHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public directory routes
	e.GET("/categories", r.categoryHandler.List)

	listingGroup := e.Group("/listings")
	{
		listingGroup.GET("", r.directoryHandler.Browse)
		listingGroup.GET("/status", r.directoryHandler.Status)
		listingGroup.POST("/refetch", r.directoryHandler.Refetch)
		listingGroup.GET("/:id/comments", r.directoryHandler.Comments)
		listingGroup.GET("/:id/qrcode", r.directoryHandler.QRCode)
		// Reviews carry the author identity from the token.
		listingGroup.POST("/:id/comments", r.directoryHandler.AddComment, r.authMiddleware.Authenticate)
	}

	// Owner routes that require authentication and the "business_owner" role
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole(entity.RoleBusinessOwner))
	{
		ownerGroup.POST("/listings", r.registrationHandler.Register)
		ownerGroup.GET("/listings", r.registrationHandler.OwnListings)
	}

	// Moderation routes that require a manager or admin token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireModerator())
	{
		adminGroup.GET("/listings", r.adminHandler.All)
		adminGroup.GET("/listings/pending", r.adminHandler.Pending)
		adminGroup.POST("/listings/:id/approve", r.adminHandler.Approve)
		adminGroup.POST("/listings/:id/reject", r.adminHandler.Reject)
		adminGroup.POST("/listings/:id/toggle", r.adminHandler.ToggleActive)
		adminGroup.DELETE("/listings/:id", r.adminHandler.Delete)
	}
}
