package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fundsinvestors/backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	application.Log.Info("Starting HTTP server", "addr", application.Cfg.HTTPAddr)
	if err := application.Run(); err != nil {
		application.Log.Error("HTTP server stopped", "error", err)
		os.Exit(1)
	}
}
