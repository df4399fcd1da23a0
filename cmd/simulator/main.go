package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulseboard/configs"
	"pulseboard/internal/generator"
	"pulseboard/internal/simulator"
	"pulseboard/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := configs.AppLoad()

	store, err := storage.NewClickHouseStorage(cfg.DBDSN)
	if err != nil {
		logger.Error("Failed to connect to ClickHouse", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	gen, err := generator.New(generator.DefaultConfig())
	if err != nil {
		logger.Error("Invalid generator config", "error", err)
		os.Exit(1)
	}

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>32))

	sim := simulator.New(gen, store, rng, logger, simulator.Config{
		Interval: cfg.SimInterval,
	})

	// Run with graceful shutdown: cancellation lands at the next tick
	// boundary, never mid-tick.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sim.Run(ctx); err != nil {
		logger.Error("Simulator stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Simulator shutdown complete")
}
