// main.go
package main

import (
	"log"
	"net/http"

	"rentoverse-web/cmd"
	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/web"
	"rentoverse-web/internal/wire"
	"rentoverse-web/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("backend", config.Backend.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Backend API client
	httpClient := &http.Client{Timeout: config.Backend.Timeout}
	be := backend.New(config.Backend.BaseURL, httpClient, logger)

	// In-memory session store
	store := session.NewStore()

	// Parse embedded templates
	renderer, err := web.NewRenderer(logger)
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(be, store, renderer, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, app.Registry.StopAll)
}
