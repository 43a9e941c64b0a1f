package app

import (
	"fmt"

	"github.com/fairwaylabs/golfcoach-backend/internal/platform/logger"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/openai"
	"github.com/fairwaylabs/golfcoach-backend/internal/platform/sendgrid"
)

type Clients struct {
	OpenAI   openai.Client
	SendGrid sendgrid.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	ai, err := openai.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init openai client: %w", err)
	}
	mail, err := sendgrid.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init sendgrid client: %w", err)
	}
	return Clients{OpenAI: ai, SendGrid: mail}, nil
}
