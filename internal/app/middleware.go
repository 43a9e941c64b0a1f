package app

import (
	"github.com/fairwaylabs/golfcoach-backend/internal/http/middleware"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, services.Auth),
	}
}
