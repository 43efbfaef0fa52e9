package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/deedlane/marketplace/internal/adapter"
	"github.com/deedlane/marketplace/internal/api/middleware"
	"github.com/deedlane/marketplace/internal/api/rest"
	"github.com/deedlane/marketplace/internal/api/server"
	"github.com/deedlane/marketplace/internal/bids"
	"github.com/deedlane/marketplace/internal/chain"
	"github.com/deedlane/marketplace/internal/config"
	"github.com/deedlane/marketplace/internal/logger"
	"github.com/deedlane/marketplace/internal/messaging"
	"github.com/deedlane/marketplace/internal/minting"
	"github.com/deedlane/marketplace/internal/providers/jetstream"
	"github.com/deedlane/marketplace/internal/store"
)

func main() {
	cfg, err := config.LoadAPIConfig()
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
	if err := store.ConfigureConnectionPool(st,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime); err != nil {
		logger.Fatal("failed to configure connection pool", zap.Error(err))
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

	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.NATS.Endpoint != "" {
		publisher, err = jetstream.NewPublisher(cfg.NATS.Endpoint, cfg.NATS.StreamName, cfg.NATS.SubjectPrefix)
		if err != nil {
			logger.Fatal("failed to connect to nats", zap.Error(err))
		}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close publisher", zap.Error(err))
		}
	}()

	auth, err := middleware.NewAuthenticator(cfg.Auth.JWTPublicKeyPEM, cfg.Auth.APIKeys)
	if err != nil {
		logger.Fatal("failed to build authenticator", zap.Error(err))
	}

	bidService := bids.NewService(st, resolver, publisher, adapter.NewClock(), 8)
	defer bidService.Stop()
	tracker := minting.NewTracker(st)

	handler := rest.NewHandler(st, bidService, tracker)
	srv := server.New(cfg.ListenAddr, cfg.Debug, handler, auth)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
	logger.Info("server stopped")
}
