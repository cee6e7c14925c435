package routes

import (
	"bhandara/internal/config"
	"bhandara/internal/handlers"
	"bhandara/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupEventRoutes sets up the event submission, feedback and moderation routes
func SetupEventRoutes(r *gin.RouterGroup, eventHandler *handlers.EventHandler, security *config.SecurityConfig) {
	// Public read routes
	events := r.Group("/events")
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEvent)
	}

	// Authenticated submission and feedback routes
	authed := r.Group("/events")
	authed.Use(middleware.AuthRequired(security))
	{
		authed.POST("", eventHandler.CreateEvent)
		authed.POST("/:id/like", eventHandler.LikeEvent)
		authed.POST("/:id/dislike", eventHandler.DislikeEvent)
		authed.GET("/:id/feedback", eventHandler.GetFeedbackStatus)
	}

	// The creator's own submissions, moderator audit fields included
	mine := r.Group("/my/events")
	mine.Use(middleware.AuthRequired(security))
	{
		mine.GET("", eventHandler.ListMyEvents)
	}

	// Moderation routes
	admin := r.Group("/admin/events")
	admin.Use(middleware.AuthRequired(security), middleware.AdminRequired())
	{
		admin.GET("", eventHandler.ListAdminEvents)
		admin.PUT("/:id/status", eventHandler.UpdateEventStatus)
		admin.PUT("/:id/verify", eventHandler.ToggleVerification)
		admin.DELETE("/:id", eventHandler.DeleteEvent)
	}
}
