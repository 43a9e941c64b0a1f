package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fairwaylabs/golfcoach-backend/internal/app"
)

func main() {
	// Missing .env is fine; containers inject real env directly.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Log.Sync()

	if err := a.Run(); err != nil {
		a.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
