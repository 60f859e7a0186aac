package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-race-nft/internal/bootstrap"
	"github.com/feral-file/ff-race-nft/internal/cli"
	"github.com/feral-file/ff-race-nft/internal/config"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(newServices)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
	logger.Flush(2 * time.Second)
}

func newServices(opts cli.Options) (*cli.Services, func(), error) {
	config.ChdirRepoRoot()
	cfg, err := config.LoadAdminConfig(opts.ConfigFile, opts.EnvPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "race-nft-admin",
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Admin runs never publish mint events
	providers, err := bootstrap.NewProviders(cfg.ProvidersConfig, nil)
	if err != nil {
		return nil, nil, err
	}

	return &cli.Services{
		Ledger:                  providers.Ledger,
		Images:                  providers.Images,
		Query:                   providers.Query,
		RaceCollectionID:        cfg.Unique.RaceCollectionID,
		AchievementCollectionID: cfg.Unique.AchievementCollectionID,
		PregenerateConcurrency:  cfg.PregenerateConcurrency,
	}, providers.Close, nil
}
