package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consent-gateway/config"
	pgStorage "consent-gateway/internal/adapter/storage/postgres"
	redisStorage "consent-gateway/internal/adapter/storage/redis"
	"consent-gateway/internal/core/ports"
	"consent-gateway/internal/service"
	"consent-gateway/pkg/logger"
)

// The sweeper is the background half of the consent lifecycle: it moves
// consents whose validity window has closed to EXPIRED so the authorization
// engine never has to trust a stale status.
func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Dur("interval", cfg.Sweeper.Interval).
		Int("batch_size", cfg.Sweeper.BatchSize).
		Msg("Starting consent expiry sweeper")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories and services
	consentRepo := pgStorage.NewConsentRepo(pool)
	consentSvc := service.NewConsentService(consentRepo, log)

	// Initialize health checkers
	healthCheckers := []ports.HealthChecker{
		pgStorage.NewHealthCheck(pool),
		redisStorage.NewHealthCheck(rdb),
	}

	// Sweep loop with graceful shutdown
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cfg.Sweeper.Interval)
	defer ticker.Stop()

	sweep := func() {
		sweepCtx, cancel := context.WithTimeout(runCtx, cfg.Sweeper.Interval)
		defer cancel()

		for _, hc := range healthCheckers {
			if err := hc.Ping(sweepCtx); err != nil {
				log.Warn().Err(err).Str("dependency", hc.Name()).Msg("dependency unhealthy, skipping sweep")
				return
			}
		}

		expired, err := consentSvc.ExpireOverdue(sweepCtx, time.Now().UTC(), cfg.Sweeper.BatchSize)
		if err != nil {
			log.Error().Err(err).Msg("sweep failed")
			return
		}
		if expired > 0 {
			log.Info().Int("expired", expired).Msg("sweep completed")
		}
	}

	sweep()
	for {
		select {
		case <-runCtx.Done():
			log.Info().Msg("Shutting down sweeper...")
			log.Info().Msg("Sweeper exited")
			return
		case <-ticker.C:
			sweep()
		}
	}
}
