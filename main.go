package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"salesledger_server/api"
	"salesledger_server/config"
	"salesledger_server/database"
	"salesledger_server/services"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.GetConfig()
	logger := config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", gecho.Field("error", err))
	}

	cache := services.NewCacheService(logger, cfg)

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(cfg, logger, db, cache),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", gecho.Field("error", err))
		}
	}()

	waitForShutdown(srv, db, cache, logger)
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight
// requests and closes the storage and cache connections.
func waitForShutdown(srv *http.Server, db *database.DB, cache *services.CacheService, logger *gecho.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	sig := <-c
	logger.Info("Received shutdown signal", gecho.Field("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", gecho.Field("error", err))
	}

	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", gecho.Field("error", err))
	}

	if err := cache.Close(); err != nil {
		logger.Error("Failed to close cache connection", gecho.Field("error", err))
	}

	logger.Info("Shutdown complete")
}
