package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront-assistant/config"
	_ "storefront-assistant/docs" // Swagger docs
	"storefront-assistant/internal/httpserver"
	"storefront-assistant/internal/storage"
	"storefront-assistant/pkg/log"
)

// @title       Storefront Assistant API
// @description Natural-language storefront assistant: product catalog, orders and utility tools behind a single query endpoint.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run owns every deferred cleanup; main exits after they have executed, so
// the database close and its WAL checkpoint also happen on failure paths.
func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return err
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Storefront Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Storage
	db, err := storage.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Errorf(ctx, "Failed to close database: %v", closeErr)
		}
	}()

	if cfg.Database.Seed {
		if err := storage.Seed(ctx, db); err != nil {
			logger.Errorf(ctx, "Failed to seed database: %v", err)
			return err
		}
	}

	// 4. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		DB:                  db,
		ClassifierCacheSize: cfg.Assistant.ClassifierCacheSize,
		RateLimitPerSecond:  cfg.Assistant.RateLimitPerSecond,
		RateLimitBurst:      cfg.Assistant.RateLimitBurst,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return err
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
		return err
	}

	return nil
}
