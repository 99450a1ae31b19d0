package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yungbote/maturitypath-backend/internal/app"
	"github.com/yungbote/maturitypath-backend/internal/platform/envutil"
)

func main() {
	// Missing .env is fine in containerized deploys.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	port := envutil.String("PORT", "8080")
	if err := a.Run(":" + port); err != nil {
		a.Log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
