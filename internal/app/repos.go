package app

import (
	"gorm.io/gorm"

	golfrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/golf"
	userrepo "github.com/fairwaylabs/golfcoach-backend/internal/data/repos/user"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
)

type Repos struct {
	User           userrepo.UserRepo
	Profile        golfrepo.ProfileRepo
	Journal        golfrepo.JournalRepo
	Recommendation golfrepo.RecommendationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           userrepo.NewUserRepo(db, log),
		Profile:        golfrepo.NewProfileRepo(db, log),
		Journal:        golfrepo.NewJournalRepo(db, log),
		Recommendation: golfrepo.NewRecommendationRepo(db, log),
	}
}
