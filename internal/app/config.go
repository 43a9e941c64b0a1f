package app

import (
	"time"

	"github.com/fairwaylabs/golfcoach-backend/internal/platform/envutil"
)

type Config struct {
	Port            string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	ResetTokenTTL   time.Duration
	FrontendBaseURL string
	LogMode         string
}

func LoadConfig() Config {
	return Config{
		Port:            envutil.String("PORT", "5050"),
		JWTSecretKey:    envutil.String("JWT_SECRET_KEY", "defaultsecret"),
		AccessTokenTTL:  time.Duration(envutil.Int("ACCESS_TOKEN_TTL", 3600)) * time.Second,
		ResetTokenTTL:   time.Duration(envutil.Int("RESET_TOKEN_EXP_MIN", 60)) * time.Minute,
		FrontendBaseURL: envutil.String("FRONTEND_BASE_URL", "http://localhost:5173"),
		LogMode:         envutil.String("LOG_MODE", "development"),
	}
}
