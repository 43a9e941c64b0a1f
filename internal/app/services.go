package app

import (
	"gorm.io/gorm"

	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
	"github.com/fairwaylabs/golfcoach-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Profile services.ProfileService
	Journal services.JournalService
	Coach   services.CoachService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Auth: services.NewAuthService(
			db, log, repos.User, clients.SendGrid,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.ResetTokenTTL, cfg.FrontendBaseURL,
		),
		Profile: services.NewProfileService(db, log, repos.Profile),
		Journal: services.NewJournalService(db, log, repos.Journal),
		Coach:   services.NewCoachService(db, log, repos.Profile, repos.Journal, repos.Recommendation, clients.OpenAI),
	}
}
