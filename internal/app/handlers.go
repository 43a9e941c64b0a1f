package app

import (
	"github.com/fairwaylabs/golfcoach-backend/internal/http/handlers"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Journal *handlers.JournalHandler
	Coach   *handlers.CoachHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  handlers.NewHealthHandler(),
		Auth:    handlers.NewAuthHandler(services.Auth),
		Profile: handlers.NewProfileHandler(services.Profile),
		Journal: handlers.NewJournalHandler(services.Journal),
		Coach:   handlers.NewCoachHandler(services.Coach),
	}
}
