package server

import (
	"github.com/gin-gonic/gin"

	"github.com/fairwaylabs/golfcoach-backend/internal/http/handlers"
	"github.com/fairwaylabs/golfcoach-backend/internal/http/middleware"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	FrontendBaseURL string

	AuthMiddleware *middleware.AuthMiddleware

	HealthHandler  *handlers.HealthHandler
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	JournalHandler *handlers.JournalHandler
	CoachHandler   *handlers.CoachHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.FrontendBaseURL))
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/forgot", cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset/:token", cfg.AuthHandler.ResetPassword)
	}

	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.GET("/auth/users", cfg.AuthHandler.ListUsers)

		protected.GET("/profile", cfg.ProfileHandler.Get)
		protected.PUT("/profile", cfg.ProfileHandler.Update)

		protected.POST("/journal", cfg.JournalHandler.Create)
		protected.GET("/journal", cfg.JournalHandler.List)
		protected.GET("/journal/:id", cfg.JournalHandler.Get)
		protected.PUT("/journal/:id", cfg.JournalHandler.Update)
		protected.DELETE("/journal/:id", cfg.JournalHandler.Delete)

		protected.POST("/ai-coach/generate", cfg.CoachHandler.Generate)
		protected.GET("/ai-coach/history", cfg.CoachHandler.History)
		protected.GET("/ai-coach/latest", cfg.CoachHandler.Latest)
	}

	return router
}
