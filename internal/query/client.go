package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/logger"
	"github.com/feral-file/ff-race-nft/internal/providers/unique"
	"github.com/feral-file/ff-race-nft/internal/ratelimit"
)

// Client reads a player's tokens back from the ledger
//
//go:generate mockgen -source=client.go -destination=../mocks/query_client.go -package=mocks -mock_names=Client=MockQueryClient
type Client interface {
	// ListRaces reconstructs the race results held by owner in a collection
	ListRaces(ctx context.Context, owner string, collectionID uint64) (*domain.RaceListing, error)
	// ListAchievements reconstructs the achievements held by owner in a collection
	ListAchievements(ctx context.Context, owner string, collectionID uint64) (*domain.AchievementListing, error)
}

// DEFAULT_CONCURRENCY is the number of token reads dispatched at once per listing
const DEFAULT_CONCURRENCY = 4

// Config holds the fan-out settings of a query client
type Config struct {
	// Concurrency caps the workers reading tokens for one listing
	Concurrency int
}

type client struct {
	ledger unique.Client
	proxy  ratelimit.Proxy
	json   adapter.JSON
	config Config
}

// NewClient creates a query client. Per-token reads go through proxy.
func NewClient(ledger unique.Client, proxy ratelimit.Proxy, json adapter.JSON, config Config) Client {
	if config.Concurrency <= 0 {
		config.Concurrency = DEFAULT_CONCURRENCY
	}
	return &client{
		ledger: ledger,
		proxy:  proxy,
		json:   json,
		config: config,
	}
}

// fetched is the outcome of reading one token
type fetched struct {
	tokenID uint64
	data    *tokenData
	err     error
}

// ListRaces reconstructs the race results held by owner in a collection
func (c *client) ListRaces(ctx context.Context, owner string, collectionID uint64) (*domain.RaceListing, error) {
	results, err := c.fetchAll(ctx, owner, collectionID)
	if err != nil {
		return nil, err
	}

	listing := &domain.RaceListing{
		Races:   []domain.RaceRecord{},
		Skipped: []domain.SkippedToken{},
	}
	for _, r := range results {
		if r.err != nil {
			listing.Skipped = append(listing.Skipped, c.skip(ctx, r.tokenID, r.err))
			continue
		}

		record, err := c.raceRecord(r.tokenID, r.data)
		if err != nil {
			listing.Skipped = append(listing.Skipped, c.skip(ctx, r.tokenID, err))
			continue
		}
		listing.Races = append(listing.Races, *record)
	}

	return listing, nil
}

// ListAchievements reconstructs the achievements held by owner in a collection
func (c *client) ListAchievements(ctx context.Context, owner string, collectionID uint64) (*domain.AchievementListing, error) {
	results, err := c.fetchAll(ctx, owner, collectionID)
	if err != nil {
		return nil, err
	}

	listing := &domain.AchievementListing{
		Achievements: []domain.AchievementRecord{},
		Skipped:      []domain.SkippedToken{},
	}
	for _, r := range results {
		if r.err != nil {
			listing.Skipped = append(listing.Skipped, c.skip(ctx, r.tokenID, r.err))
			continue
		}
		listing.Achievements = append(listing.Achievements, achievementRecord(r.tokenID, r.data))
	}

	return listing, nil
}

// fetchAll enumerates the owner's tokens and reads each one concurrently.
// Results keep the enumeration order.
func (c *client) fetchAll(ctx context.Context, owner string, collectionID uint64) ([]fetched, error) {
	tokens, err := c.ledger.AccountTokens(ctx, owner, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	logger.InfoCtx(ctx, "Fetching tokens",
		zap.String("owner", owner),
		zap.Uint64("collectionId", collectionID),
		zap.Int("count", len(tokens)),
	)

	results := make([]fetched, len(tokens))
	if len(tokens) == 0 {
		return results, nil
	}

	// Every task runs even after ctx ends so each slot is filled; the proxy fails them fast.
	pool := pond.NewPool(min(c.config.Concurrency, len(tokens)))
	for i, t := range tokens {
		pool.Submit(func() {
			results[i] = c.fetchOne(ctx, collectionID, t.TokenID)
		})
	}
	pool.StopAndWait()

	return results, nil
}

// fetchOne reads and decodes a single token through the rate limited proxy
func (c *client) fetchOne(ctx context.Context, collectionID, tokenID uint64) fetched {
	token, err := ratelimit.Request(ctx, c.proxy, func(ctx context.Context) (*unique.Token, error) {
		return c.ledger.GetToken(ctx, collectionID, tokenID)
	})
	if err != nil {
		return fetched{tokenID: tokenID, err: fmt.Errorf("%w: %v", errFetchFailed, err)}
	}

	data, err := c.decodeTokenData(token)
	return fetched{tokenID: tokenID, data: data, err: err}
}

func (c *client) skip(ctx context.Context, tokenID uint64, err error) domain.SkippedToken {
	logger.WarnCtx(ctx, "Skipping token", zap.Uint64("tokenId", tokenID), zap.Error(err))

	reason := domain.SKIP_REASON_FETCH_FAILED
	switch {
	case errors.Is(err, domain.ErrTokenDataMissing):
		reason = domain.SKIP_REASON_TOKEN_DATA_MISSING
	case errors.Is(err, domain.ErrTokenDataMalformed):
		reason = domain.SKIP_REASON_TOKEN_DATA_MALFORMED
	}

	return domain.SkippedToken{TokenID: tokenID, Reason: reason}
}

var errFetchFailed = errors.New("token fetch failed")
