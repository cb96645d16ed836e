// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"plaza/internal/delivery/http/middleware"
	"plaza/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GeoHandler          *handler.GeoHandler
	RequestHandler      *handler.RequestHandler
	ConversationHandler *handler.ConversationHandler
	ListingHandler      *handler.ListingHandler
	ProviderHandler     *handler.ProviderHandler
	EventHandler        *handler.EventHandler
	ReviewHandler       *handler.ReviewHandler
	ModerationHandler   *handler.ModerationHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Geocoding and distance, public
	geoGroup := e.Group("/geo")
	{
		geoGroup.GET("/resolve", r.params.GeoHandler.Resolve)
		geoGroup.GET("/distance", r.params.GeoHandler.Distance)
	}

	// Public catalog browsing
	e.GET("/listings", r.params.ListingHandler.BrowseListings)
	e.GET("/listings/:id", r.params.ListingHandler.GetListing)
	e.GET("/listings/:id/qr", r.params.ListingHandler.ShareQR)
	e.POST("/listings/qr/resolve", r.params.ListingHandler.ResolveShareQR)
	e.GET("/providers", r.params.ProviderHandler.ListProviders)
	e.GET("/events", r.params.EventHandler.ListUpcomingEvents)
	e.GET("/requests", r.params.RequestHandler.ListOpenRequests)
	e.GET("/requests/:id", r.params.RequestHandler.GetRequest)
	e.GET("/requests/:id/providers", r.params.RequestHandler.MatchingProviders)
	e.GET("/reviews/:subjectID", r.params.ReviewHandler.GetReviews)

	// Authenticated catalog management
	listingGroup := e.Group("/listings")
	listingGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		listingGroup.POST("", r.params.ListingHandler.CreateListing)
		listingGroup.POST("/:id/images", r.params.ListingHandler.AddImages)
		listingGroup.DELETE("/:id", r.params.ListingHandler.DeleteListing)
	}

	providerGroup := e.Group("/providers")
	providerGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		providerGroup.POST("", r.params.ProviderHandler.CreateProvider)
	}

	eventGroup := e.Group("/events")
	eventGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		eventGroup.POST("", r.params.EventHandler.CreateEvent)
	}

	// Service requests
	requestGroup := e.Group("/requests")
	requestGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		requestGroup.POST("", r.params.RequestHandler.CreateRequest)
		requestGroup.PATCH("/:id/status", r.params.RequestHandler.SetRequestStatus)
		requestGroup.DELETE("/:id", r.params.RequestHandler.DeleteRequest)
	}

	// Conversations and quotations
	conversationGroup := e.Group("/conversations")
	conversationGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		conversationGroup.POST("", r.params.ConversationHandler.Open)
		conversationGroup.GET("/provider/:providerID", r.params.ConversationHandler.ListForProvider)
		conversationGroup.GET("/:id/messages", r.params.ConversationHandler.Messages)
		conversationGroup.POST("/:id/messages", r.params.ConversationHandler.SendMessage)
		conversationGroup.POST("/:id/read", r.params.ConversationHandler.MarkRead)
	}

	e.POST("/quotations", r.params.ConversationHandler.SendQuotation, r.params.AuthMiddleware.Authenticate)

	// Reviews
	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		reviewGroup.POST("", r.params.ReviewHandler.SubmitReview)
	}

	// Per-user resources
	meGroup := e.Group("/me")
	meGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		meGroup.GET("/requests", r.params.RequestHandler.ListOwnRequests)
		meGroup.GET("/listings", r.params.ListingHandler.ListOwnListings)
		meGroup.GET("/provider", r.params.ProviderHandler.GetOwnProvider)
		meGroup.GET("/conversations", r.params.ConversationHandler.ListForUser)
		meGroup.GET("/unread", r.params.ConversationHandler.UnreadCount)
		meGroup.GET("/unread/by-request", r.params.ConversationHandler.UnreadCountPerRequest)
		meGroup.GET("/reviews/:subjectID", r.params.ReviewHandler.GetOwnReview)
		meGroup.POST("/devices", r.params.DeviceHandler.RegisterDevice)
		meGroup.DELETE("/devices/:deviceID", r.params.DeviceHandler.RemoveDevice)
	}

	// Moderation, admin role required
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/moderate", r.params.ModerationHandler.Moderate)
	}
}
