// ABOUTME: Main entry point for the Markdown Collector API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"markdown-collector-api/api"
	"markdown-collector-api/api/handlers"
	"markdown-collector-api/core/capture"
	"markdown-collector-api/core/collection"
	"markdown-collector-api/core/convert"
	"markdown-collector-api/core/interfaces"
	"markdown-collector-api/core/notify"
	"markdown-collector-api/core/refine"
	"markdown-collector-api/core/settings"
	"markdown-collector-api/core/tabs"
	systemclipboard "markdown-collector-api/infrastructure/clipboard/system"
	stdhttp "markdown-collector-api/infrastructure/http/standard"
	logruslogger "markdown-collector-api/infrastructure/logger/logrus"
	"markdown-collector-api/infrastructure/store/memory"
	"markdown-collector-api/infrastructure/store/redis"
	"markdown-collector-api/infrastructure/store/sqlite"
	"markdown-collector-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.New(cfg.LogLevel)
	logger.Info("Starting Markdown Collector API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"store_type": cfg.Store.Type,
	})

	// Create store
	var store interfaces.KeyValueStore
	switch cfg.Store.Type {
	case "redis":
		redisStore, err := redis.NewStore(cfg.Store.Redis)
		if err != nil {
			logger.Error("Failed to connect to Redis, falling back to memory store", map[string]interface{}{
				"error": err.Error(),
			})
			store = memory.NewStore()
		} else {
			store = redisStore
			logger.Info("Using Redis store", map[string]interface{}{
				"address": cfg.Store.Redis.Address,
			})
		}
	case "memory":
		store = memory.NewStore()
		logger.Info("Using memory store; the collection will not survive restarts", nil)
	default:
		sqliteStore, err := sqlite.NewStore(cfg.Store.SQLite.FilePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite store: %v", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
		logger.Info("Using SQLite store", map[string]interface{}{
			"path": cfg.Store.SQLite.FilePath,
		})
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Store:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	sink := notify.NewSink(logger)
	registry := tabs.NewRegistry(logger)
	repository := collection.NewRepository(deps)
	settingsService := settings.NewService(deps)
	converter := convert.NewService(deps)
	refiner := refine.NewService(deps, sink)
	clipboard := systemclipboard.NewClipboard()

	coordinator := capture.NewCoordinator(capture.Config{
		Converter:  converter,
		Refiner:    refiner,
		Selector:   registry,
		Repository: repository,
		Settings:   settingsService,
		Clipboard:  clipboard,
		Notifier:   sink,
		Logger:     logger,
	})

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	captureHandler := handlers.NewCaptureHandler(coordinator)
	captureHandler.RegisterRoutes(humaAPI)

	refinementHandler := handlers.NewRefinementHandler(coordinator)
	refinementHandler.RegisterRoutes(humaAPI)

	collectionHandler := handlers.NewCollectionHandler(repository, converter, settingsService, clipboard)
	collectionHandler.RegisterRoutes(humaAPI)

	settingsHandler := handlers.NewSettingsHandler(settingsService)
	settingsHandler.RegisterRoutes(humaAPI)

	tabsHandler := handlers.NewTabsHandler(registry, coordinator)
	tabsHandler.RegisterRoutes(humaAPI)

	notificationsHandler := handlers.NewNotificationsHandler(sink)
	notificationsHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // refinement calls wait on the LLM
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
