package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamevault/pensopay/internal/config"
	"github.com/gamevault/pensopay/internal/db"
	"github.com/gamevault/pensopay/internal/handlers"
	"github.com/gamevault/pensopay/internal/repository"
	"github.com/joho/godotenv"
)

// Cached idempotent responses only matter inside the client retry window
const idempotencyRetention = 24 * time.Hour

// cleanupIdempotencyKeys periodically drops expired idempotency keys
func cleanupIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-idempotencyRetention))
			if err != nil {
				logger.Error("failed to clean up idempotency keys", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("cleaned up idempotency keys", "deleted", deleted)
			}
		}
	}
}

func main() {
	// Optional .env for local development; real environments set vars directly
	_ = godotenv.Load() //nolint:errcheck // missing .env is fine

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting pensopay reconciliation service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"testmode", cfg.Gateway.Testmode,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	router := handlers.NewRouter(database, cfg, logger)

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go cleanupIdempotencyKeys(cleanupCtx, repository.NewIdempotencyRepository(database), logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
