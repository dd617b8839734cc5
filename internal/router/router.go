package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "lexconnect/docs"
	"lexconnect/internal/domain"
	"lexconnect/internal/handler"
	"lexconnect/internal/middleware"
	"lexconnect/internal/service"
)

// Handlers bundles every HTTP handler wired into the engine.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Case         *handler.CaseHandler
	Appointment  *handler.AppointmentHandler
	Document     *handler.DocumentHandler
	Conversation *handler.ConversationHandler
	CaseType     *handler.CaseTypeHandler
	Dashboard    *handler.DashboardHandler
	Notification *handler.NotificationHandler
	Health       *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)
	protected.GET("/dashboard", h.Dashboard.Summary)

	cases := protected.Group("/cases")
	cases.GET("", h.Case.List)
	cases.GET("/:id", h.Case.GetByID)

	appointments := protected.Group("/appointments")
	appointments.GET("", h.Appointment.List)
	appointments.GET("/calendar", h.Appointment.OnDate)
	appointments.POST("", h.Appointment.Upsert)
	appointments.GET("/:id", h.Appointment.GetByID)
	appointments.POST("/:id/cancel", h.Appointment.Cancel)
	appointments.POST("/:id/complete", h.Appointment.Complete)

	documents := protected.Group("/documents")
	documents.GET("", h.Document.List)
	documents.GET("/:id", h.Document.GetByID)
	documents.POST("/:id/sign", h.Document.Sign)

	conversations := protected.Group("/conversations")
	conversations.GET("", h.Conversation.List)
	conversations.GET("/:id", h.Conversation.GetByID)
	conversations.GET("/:id/messages", h.Conversation.ListMessages)
	conversations.POST("/:id/messages", h.Conversation.SendMessage)
	conversations.POST("/:id/read", h.Conversation.MarkRead)

	notifications := protected.Group("/notifications")
	notifications.GET("", h.Notification.List)
	notifications.POST("/read-all", h.Notification.MarkAllRead)
	notifications.POST("/:id/read", h.Notification.MarkRead)

	// Admin routes - user and taxonomy management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.POST("/users", h.User.Create)
	admin.GET("/users", h.User.List)
	admin.GET("/users/:id", h.User.GetByID)
	admin.PUT("/users/:id", h.User.Update)
	admin.POST("/users/:id/toggle-active", h.User.ToggleActive)

	admin.POST("/cases", h.Case.Create)
	admin.PUT("/cases/:id", h.Case.Update)

	admin.GET("/casetypes", h.CaseType.BaseTypes)
	admin.GET("/casetypes/subtypes", h.CaseType.ListSubtypes)
	admin.POST("/casetypes/subtypes", h.CaseType.CreateSubtype)

	return r
}
