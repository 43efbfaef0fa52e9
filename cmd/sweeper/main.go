package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/deedlane/marketplace/internal/adapter"
	"github.com/deedlane/marketplace/internal/chain"
	"github.com/deedlane/marketplace/internal/config"
	"github.com/deedlane/marketplace/internal/logger"
	"github.com/deedlane/marketplace/internal/store"
	"github.com/deedlane/marketplace/internal/sweeper"
)

func main() {
	cfg, err := config.LoadSweeperConfig()
	if err != nil {
		panic(err)
	}

	if err := logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.Sentry.DSN,
	}); err != nil {
		panic(err)
	}
	defer logger.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.NewPGStore(cfg.Database.DSN(), cfg.Debug)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}

	ethClient, err := adapter.DialEthClient(ctx, cfg.Chain.RPCEndpoint)
	if err != nil {
		logger.Fatal("failed to dial eth node", zap.Error(err))
	}
	defer ethClient.Close()

	resolver, err := chain.NewOwnerResolver(ethClient, cfg.Chain.CallTimeout)
	if err != nil {
		logger.Fatal("failed to build owner resolver", zap.Error(err))
	}

	s := sweeper.NewOwnershipSweeper(st, resolver, adapter.NewClock(),
		cfg.Interval, cfg.BatchSize, cfg.Concurrency)

	if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("sweeper exited", zap.Error(err))
	}
	logger.Info("sweeper stopped", zap.String("name", s.Name()))
}
