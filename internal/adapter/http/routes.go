package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AErenK/site-yonetim/internal/adapter/http/handlers"
	"github.com/AErenK/site-yonetim/internal/adapter/http/middleware"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Task         *handlers.TaskHandler
	Notification *handlers.NotificationHandler
	Push         *handlers.PushHandler
	User         *handlers.UserHandler
	Admin        *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
	}

	// Everything below requires a session; role gating happens in the
	// services against the explicit caller identity.
	authed := api.Group("")
	authed.Use(authMiddleware)
	{
		authed.GET("/auth/me", h.Auth.Me)

		authed.GET("/tasks", h.Task.ListDashboard)
		authed.GET("/tasks/assigned", h.Task.ListAssigned)
		authed.GET("/tasks/:id", h.Task.Get)
		authed.POST("/tasks", h.Task.Create)
		authed.POST("/tasks/:id/complete", h.Task.Complete)
		authed.POST("/tasks/:id/approve", h.Task.Approve)
		authed.POST("/tasks/:id/extend", h.Task.Extend)
		authed.POST("/tasks/:id/permanent", h.Task.TogglePermanent)
		authed.DELETE("/tasks/:id", h.Task.Delete)

		authed.GET("/notifications", h.Notification.List)
		authed.POST("/notifications/:id/read", h.Notification.MarkRead)

		authed.POST("/push/subscriptions", h.Push.Subscribe)
		authed.DELETE("/push/subscriptions", h.Push.Unsubscribe)

		authed.GET("/users", h.User.List)
		authed.DELETE("/users/:id", h.User.Delete)

		authed.POST("/admin/reset", h.Admin.Reset)
	}
}
