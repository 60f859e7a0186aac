package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/api/middleware"
	"github.com/feral-file/ff-race-nft/internal/api/rest"
	"github.com/feral-file/ff-race-nft/internal/api/server"
	"github.com/feral-file/ff-race-nft/internal/bootstrap"
	"github.com/feral-file/ff-race-nft/internal/config"
	"github.com/feral-file/ff-race-nft/internal/logger"
	"github.com/feral-file/ff-race-nft/internal/messaging"
	"github.com/feral-file/ff-race-nft/internal/providers/jetstream"
	"github.com/feral-file/ff-race-nft/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "race-nft-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Race NFT API")

	// Mint events are optional
	var publisher messaging.Publisher = messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "NATS not configured, mint events will not be published")
	}
	defer publisher.Close()

	providers, err := bootstrap.NewProviders(cfg.ProvidersConfig, publisher)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize providers", zap.Error(err))
	}
	defer providers.Close()

	handler := rest.NewHandler(rest.Services{
		Orchestrator: providers.Orchestrator,
		Images:       providers.Images,
		Geocoder:     providers.Geocoder,
		Completer:    providers.Completer,
		Query:        providers.Query,
	}, rest.Config{
		RaceCollectionID:        cfg.Unique.RaceCollectionID,
		AchievementCollectionID: cfg.Unique.AchievementCollectionID,
	})

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, handler)

	// Orphaned scratch files from interrupted mints
	var scratchSweeper sweeper.Sweeper = sweeper.NewScratchSweeper(sweeper.ScratchSweeperConfig{
		Dir:      cfg.Scratch.Dir,
		Interval: cfg.Scratch.SweepInterval,
		MaxAge:   cfg.Scratch.MaxAge,
	}, adapter.NewFileSystem(), adapter.NewClock())
	go func() {
		if err := scratchSweeper.Start(ctx); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("sweeper", scratchSweeper.Name()))
		}
	}()

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// In-flight mints may take a while to finish their ledger round trips
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}
	if err := scratchSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", scratchSweeper.Name()))
	}

	logger.Info("API server stopped")
}
