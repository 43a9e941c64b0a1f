package app

import (
	"github.com/gin-gonic/gin"

	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
	"github.com/fairwaylabs/golfcoach-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:             log,
		FrontendBaseURL: cfg.FrontendBaseURL,
		AuthMiddleware:  middleware.Auth,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		ProfileHandler:  handlers.Profile,
		JournalHandler:  handlers.Journal,
		CoachHandler:    handlers.Coach,
	})
}
