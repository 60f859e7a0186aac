package mint

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/downloader"
	"github.com/feral-file/ff-race-nft/internal/logger"
	"github.com/feral-file/ff-race-nft/internal/messaging"
	"github.com/feral-file/ff-race-nft/internal/providers/openai"
	"github.com/feral-file/ff-race-nft/internal/providers/pinata"
	"github.com/feral-file/ff-race-nft/internal/providers/unique"
	"github.com/feral-file/ff-race-nft/internal/scratch"
)

const (
	RACE_IMAGE_PREFIX        = "race_nft_image"
	ACHIEVEMENT_IMAGE_PREFIX = "achievement_nft_image"
	PREGENERATED_PREFIX      = "image"
)

// Config holds the mint destinations
type Config struct {
	RaceCollectionID        uint64
	AchievementCollectionID uint64
	GatewayURL              string
}

// Orchestrator mints race and achievement NFTs
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/orchestrator.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// MintRace generates an image, pins it and mints a race token for the player
	MintRace(ctx context.Context, result domain.RaceResult) (*domain.MintResult, error)
	// MintAchievement generates an image, pins it and mints an achievement token for the player
	MintAchievement(ctx context.Context, achievement domain.Achievement) (*domain.MintResult, error)
}

// Deps are the collaborators used by the mint sequence
type Deps struct {
	Generator  openai.ImageGenerator
	Downloader downloader.Downloader
	Scratch    scratch.Storage
	Pinner     pinata.Pinner
	Ledger     unique.Client
	Publisher  messaging.Publisher
	Clock      adapter.Clock
}

type orchestrator struct {
	Deps
	config Config
}

// NewOrchestrator creates a mint orchestrator
func NewOrchestrator(deps Deps, config Config) Orchestrator {
	if deps.Publisher == nil {
		deps.Publisher = messaging.NewNoopPublisher()
	}
	return &orchestrator{
		Deps:   deps,
		config: config,
	}
}

// MintRace generates an image, pins it and mints a race token for the player
func (o *orchestrator) MintRace(ctx context.Context, result domain.RaceResult) (*domain.MintResult, error) {
	res, err := o.mint(ctx, mintJob{
		kind:         domain.CollectionKindRace,
		collectionID: o.config.RaceCollectionID,
		owner:        result.PlayerAddress,
		imagePrefix:  RACE_IMAGE_PREFIX,
		attributes:   domain.RaceAttributes(result),
	})
	if err != nil {
		return nil, err
	}

	res.Message = domain.RACE_MINTED_MESSAGE
	return res, nil
}

// MintAchievement generates an image, pins it and mints an achievement token for the player
func (o *orchestrator) MintAchievement(ctx context.Context, achievement domain.Achievement) (*domain.MintResult, error) {
	res, err := o.mint(ctx, mintJob{
		kind:         domain.CollectionKindAchievement,
		collectionID: o.config.AchievementCollectionID,
		owner:        achievement.PlayerAddress,
		imagePrefix:  ACHIEVEMENT_IMAGE_PREFIX,
		attributes:   domain.AchievementAttributes(achievement),
	})
	if err != nil {
		return nil, err
	}

	res.Message = domain.ACHIEVEMENT_MINTED_MESSAGE
	return res, nil
}

type mintJob struct {
	kind         domain.CollectionKind
	collectionID uint64
	owner        string
	imagePrefix  string
	attributes   []domain.Attribute
}

// mint runs generate, download, stage, pin and mint in order. Any failure aborts the sequence.
func (o *orchestrator) mint(ctx context.Context, job mintJob) (*domain.MintResult, error) {
	logger.InfoCtx(ctx, "Minting NFT",
		zap.String("kind", string(job.kind)),
		zap.Uint64("collectionId", job.collectionID),
		zap.String("owner", job.owner),
	)

	img, err := preparePinnedImage(ctx, o.Deps, job.imagePrefix, "")
	if err != nil {
		return nil, err
	}

	pinnedURL := domain.IPFSGatewayURL(o.config.GatewayURL, img.CID)
	minted, err := o.Ledger.MintToken(ctx, unique.MintRequest{
		CollectionID: job.collectionID,
		Owner:        job.owner,
		ImageURL:     pinnedURL,
		Attributes:   job.attributes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	logger.InfoCtx(ctx, "NFT minted",
		zap.String("kind", string(job.kind)),
		zap.Uint64("tokenId", minted.TokenID),
		zap.String("owner", minted.Owner),
		zap.String("cid", img.CID),
	)

	o.publish(ctx, job, minted, img.CID, pinnedURL)

	return &domain.MintResult{
		TokenID:        minted.TokenID,
		Owner:          minted.Owner,
		ImageURL:       img.SourceURL,
		PinnedImageURL: pinnedURL,
	}, nil
}

// publish announces the mint. Failures are logged only.
func (o *orchestrator) publish(ctx context.Context, job mintJob, minted *domain.MintedToken, cid, pinnedURL string) {
	now := o.Clock.Now()
	event := &domain.MintEvent{
		EventID:      ulid.MustNewDefault(now).String(),
		Kind:         job.kind,
		CollectionID: minted.CollectionID,
		TokenID:      minted.TokenID,
		Owner:        minted.Owner,
		ImageCID:     cid,
		ImageURL:     pinnedURL,
		MintedAt:     now.UTC(),
	}

	if err := o.Publisher.PublishMint(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish mint event", zap.String("eventId", event.EventID), zap.Error(err))
	}
}
