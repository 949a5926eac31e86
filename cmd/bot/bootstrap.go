package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"crossover-bot/internal/engine"
	"crossover-bot/internal/engine/engineobs"
	"crossover-bot/internal/exchange"
	"crossover-bot/internal/exchange/exchangeobs"
	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/logger"
	"crossover-bot/internal/store"
	"crossover-bot/internal/strategy"
	"crossover-bot/internal/trace"
	"crossover-bot/internal/tradelog"
)

// initializeSystem initializes env, logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("BOT_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// compressOldLogs compresses old trade journal files if retention is configured
func compressOldLogs(ctx context.Context) {
	if v := os.Getenv("TRADER_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if err := tradelog.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old trade journals", "error", err)
		}
	}
}

// initializeGateway builds the exchange gateway for the configured mode
// and wraps it with observability
func initializeGateway(ctx context.Context, cfg *store.Config) interfaces.Gateway {
	gw := exchange.NewGateway(cfg.Mode, cfg.Exchange)

	if cfg.Mode == "DRY_RUN" {
		logger.Warn(ctx, "Running in DRY_RUN mode - orders will be simulated")
	} else {
		logger.Info(ctx, "Using LIVE exchange gateway", "exchange", cfg.Exchange)
	}

	return exchangeobs.Wrap(gw)
}

// initializeGenerator builds the configured signal generator
func initializeGenerator(ctx context.Context, cfg *store.Config) (interfaces.Generator, error) {
	gen, err := strategy.New(cfg.Strategy.Model, cfg.Strategy.ShortWindow, cfg.Strategy.LongWindow)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to build signal generator", err,
			"model", cfg.Strategy.Model,
			"short_window", cfg.Strategy.ShortWindow,
			"long_window", cfg.Strategy.LongWindow,
		)
		return nil, err
	}
	return gen, nil
}

// initializeEngine builds the trading engine with observability
func initializeEngine(cfg *store.Config, gw interfaces.Gateway) interfaces.Trader {
	eng := engine.New(gw, map[string]string{"order_tag": cfg.Trade.OrderTag})
	return engineobs.Wrap(eng)
}
