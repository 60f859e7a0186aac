package bootstrap

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/config"
	"github.com/feral-file/ff-race-nft/internal/downloader"
	"github.com/feral-file/ff-race-nft/internal/logger"
	"github.com/feral-file/ff-race-nft/internal/messaging"
	"github.com/feral-file/ff-race-nft/internal/mint"
	"github.com/feral-file/ff-race-nft/internal/providers/cloudflare"
	"github.com/feral-file/ff-race-nft/internal/providers/geocoding"
	"github.com/feral-file/ff-race-nft/internal/providers/openai"
	"github.com/feral-file/ff-race-nft/internal/providers/pinata"
	"github.com/feral-file/ff-race-nft/internal/providers/unique"
	"github.com/feral-file/ff-race-nft/internal/query"
	"github.com/feral-file/ff-race-nft/internal/ratelimit"
	"github.com/feral-file/ff-race-nft/internal/scratch"
)

// QUERY_MAX_QUEUE_TIME bounds how long one token fetch may wait for the rate limiter
const QUERY_MAX_QUEUE_TIME = 30 * time.Second

// Providers holds every service built from the provider configuration
type Providers struct {
	Ledger       unique.Client
	Orchestrator mint.Orchestrator
	Images       mint.ImageService
	Geocoder     geocoding.Geocoder
	Completer    openai.Completer
	Query        query.Client

	proxy ratelimit.Proxy
}

// NewProviders builds the provider clients and the services on top of them.
// A nil publisher disables mint events.
func NewProviders(cfg config.ProvidersConfig, publisher messaging.Publisher) (*Providers, error) {
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout)

	signer, err := unique.NewSignerFromMnemonic(cfg.Unique.Mnemonic, cfg.Unique.SS58Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to derive ledger account: %w", err)
	}
	ledger := unique.NewClient(httpClient, jsonAdapter, signer, unique.Config{
		BaseURL:     cfg.Unique.BaseURL,
		GatewayURL:  cfg.Pinata.GatewayURL,
		PollTimeout: cfg.Unique.StatusPollTimeout,
	})

	cfImages, err := adapter.NewCloudflareImages(cfg.Cloudflare.APIToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudflare client: %w", err)
	}

	geoClient, err := adapter.NewGeocodingClient(cfg.Geocoding.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoding client: %w", err)
	}

	proxy, err := ratelimit.NewProxy(ratelimit.Config{
		MaxWorkers:        cfg.Query.Concurrency,
		RequestsPerSecond: cfg.Query.RequestsPerSecond,
		MaxQueueTime:      QUERY_MAX_QUEUE_TIME,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create query rate limiter: %w", err)
	}

	openAIClient := adapter.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
	dl := downloader.NewDownloader(httpClient, cfg.HTTP.MaxDownloadBytes)

	deps := mint.Deps{
		Generator: openai.NewImageGenerator(openAIClient, openai.ImageConfig{
			Model:  cfg.OpenAI.ImageModel,
			Size:   cfg.OpenAI.ImageSize,
			Prompt: cfg.OpenAI.ImagePrompt,
		}),
		Downloader: dl,
		Scratch:    scratch.NewStorage(cfg.Scratch.Dir, fs),
		Pinner: pinata.NewClient(httpClient, fs, jsonAdapter, pinata.Config{
			JWT:    cfg.Pinata.JWT,
			APIURL: cfg.Pinata.APIURL,
		}),
		Ledger:    ledger,
		Publisher: publisher,
		Clock:     clock,
	}

	logger.Info("Ledger account ready", zap.String("address", ledger.Address()))

	return &Providers{
		Ledger: ledger,
		Orchestrator: mint.NewOrchestrator(deps, mint.Config{
			RaceCollectionID:        cfg.Unique.RaceCollectionID,
			AchievementCollectionID: cfg.Unique.AchievementCollectionID,
			GatewayURL:              cfg.Pinata.GatewayURL,
		}),
		Images: mint.NewImageService(deps, cloudflare.NewRelay(cfImages, dl, cloudflare.Config{
			AccountID: cfg.Cloudflare.AccountID,
		})),
		Geocoder:  geocoding.NewGeocoder(geoClient),
		Completer: openai.NewCompleter(openAIClient, cfg.OpenAI.ChatModel),
		Query:     query.NewClient(ledger, proxy, jsonAdapter, query.Config{Concurrency: cfg.Query.Concurrency}),
		proxy:     proxy,
	}, nil
}

// Close releases the query worker pool
func (p *Providers) Close() {
	if p.proxy != nil {
		if err := p.proxy.Close(); err != nil {
			logger.Warn("Failed to close query rate limiter", zap.Error(err))
		}
	}
}
