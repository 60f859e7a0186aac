package unique

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

const (
	TOKENS_BUILD_PATH      = "/tokens/v2?use=Build"
	COLLECTIONS_BUILD_PATH = "/collections/v2?use=Build"
	SUBMIT_PATH            = "/extrinsic/submit"
	STATUS_PATH            = "/extrinsic/status"
	ACCOUNT_TOKENS_PATH    = "/tokens/account-tokens"
	TOKEN_PATH             = "/tokens"

	DEFAULT_POLL_INTERVAL = 2 * time.Second
	DEFAULT_POLL_TIMEOUT  = 2 * time.Minute

	jsonContentType = "application/json"
)

var errExtrinsicPending = errors.New("extrinsic not completed yet")

// Config holds the ledger REST settings
type Config struct {
	BaseURL      string
	GatewayURL   string
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// Client talks to the Unique Network REST API with a single signing account
//
//go:generate mockgen -source=client.go -destination=../../mocks/ledger.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// Address returns the SS58 address of the minting account
	Address() string
	// MintToken mints one token. Not idempotent: every call mints a new token.
	MintToken(ctx context.Context, req MintRequest) (*domain.MintedToken, error)
	// CreateCollection creates a collection with the fixed schema of kind and returns its id
	CreateCollection(ctx context.Context, kind domain.CollectionKind, req CollectionRequest) (uint64, error)
	// AccountTokens lists the tokens held by address in a collection
	AccountTokens(ctx context.Context, address string, collectionID uint64) ([]AccountToken, error)
	// GetToken returns a token with its properties
	GetToken(ctx context.Context, collectionID uint64, tokenID uint64) (*Token, error)
}

type client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	signer     Signer
	config     Config
}

// NewClient creates a ledger client
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, signer Signer, config Config) Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.PollInterval <= 0 {
		config.PollInterval = DEFAULT_POLL_INTERVAL
	}
	if config.PollTimeout <= 0 {
		config.PollTimeout = DEFAULT_POLL_TIMEOUT
	}

	return &client{
		httpClient: httpClient,
		json:       json,
		signer:     signer,
		config:     config,
	}
}

// Address returns the SS58 address of the minting account
func (c *client) Address() string {
	return c.signer.Address()
}

// MintToken mints one token
func (c *client) MintToken(ctx context.Context, req MintRequest) (*domain.MintedToken, error) {
	body := createTokenBody{
		Address:      c.signer.Address(),
		CollectionID: req.CollectionID,
		Owner:        req.Owner,
		Image:        req.ImageURL,
		Attributes:   req.Attributes,
	}

	logger.InfoCtx(ctx, "Minting token",
		zap.Uint64("collectionId", req.CollectionID),
		zap.String("owner", req.Owner),
		zap.String("signer", c.signer.Address()),
	)

	parsed, err := c.execute(ctx, TOKENS_BUILD_PATH, body)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	owner := parsed.Owner
	if owner == "" {
		owner = req.Owner
	}
	collectionID := parsed.CollectionID
	if collectionID == 0 {
		collectionID = req.CollectionID
	}

	return &domain.MintedToken{
		CollectionID: collectionID,
		TokenID:      parsed.TokenID,
		Owner:        owner,
	}, nil
}

// CreateCollection creates a collection with the fixed schema of kind and returns its id
func (c *client) CreateCollection(ctx context.Context, kind domain.CollectionKind, req CollectionRequest) (uint64, error) {
	body, err := buildCollectionBody(kind, c.signer.Address(), c.config.GatewayURL, req)
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Creating collection", zap.String("kind", string(kind)), zap.String("name", req.Name))

	parsed, err := c.execute(ctx, COLLECTIONS_BUILD_PATH, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create collection: %w", err)
	}
	if parsed.CollectionID == 0 {
		return 0, fmt.Errorf("cannot parse created collection")
	}

	return parsed.CollectionID, nil
}

// AccountTokens lists the tokens held by address in a collection
func (c *client) AccountTokens(ctx context.Context, address string, collectionID uint64) ([]AccountToken, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("collectionId", strconv.FormatUint(collectionID, 10))

	data, err := c.httpClient.GetBytes(ctx, c.config.BaseURL+ACCOUNT_TOKENS_PATH+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list account tokens: %w", err)
	}

	var resp accountTokensResponse
	if err := c.json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode account tokens: %w", err)
	}

	return resp.Tokens, nil
}

// GetToken returns a token with its properties
func (c *client) GetToken(ctx context.Context, collectionID uint64, tokenID uint64) (*Token, error) {
	q := url.Values{}
	q.Set("collectionId", strconv.FormatUint(collectionID, 10))
	q.Set("tokenId", strconv.FormatUint(tokenID, 10))

	data, err := c.httpClient.GetBytes(ctx, c.config.BaseURL+TOKEN_PATH+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get token %d: %w", tokenID, err)
	}

	var token Token
	if err := c.json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to decode token %d: %w", tokenID, err)
	}

	return &token, nil
}

// execute builds, signs and submits an extrinsic, then waits for its result
func (c *client) execute(ctx context.Context, buildPath string, body interface{}) (*extrinsicParsed, error) {
	unsigned, err := c.build(ctx, buildPath, body)
	if err != nil {
		return nil, err
	}

	signature, err := c.sign(unsigned)
	if err != nil {
		return nil, err
	}

	hash, err := c.submit(ctx, unsigned.SignerPayloadJSON, signature)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Extrinsic submitted", zap.String("hash", hash))

	return c.waitForResult(ctx, hash)
}

func (c *client) build(ctx context.Context, path string, body interface{}) (*unsignedTxResponse, error) {
	payload, err := c.json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	data, err := c.httpClient.PostBytes(ctx, c.config.BaseURL+path, nil, jsonContentType, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build extrinsic: %w", err)
	}

	var unsigned unsignedTxResponse
	if err := c.json.Unmarshal(data, &unsigned); err != nil {
		return nil, fmt.Errorf("failed to decode unsigned extrinsic: %w", err)
	}
	if len(unsigned.SignerPayloadJSON) == 0 {
		return nil, fmt.Errorf("unsigned extrinsic has no signer payload")
	}

	return &unsigned, nil
}

func (c *client) sign(unsigned *unsignedTxResponse) (string, error) {
	raw := unsigned.SignerPayloadRaw.Data
	if raw == "" {
		raw = unsigned.SignerPayloadHex
	}

	payload, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return "", fmt.Errorf("failed to decode signer payload: %w", err)
	}

	sig, err := c.signer.Sign(payload)
	if err != nil {
		return "", err
	}

	return "0x" + hex.EncodeToString(sig), nil
}

func (c *client) submit(ctx context.Context, signerPayloadJSON []byte, signature string) (string, error) {
	payload, err := c.json.Marshal(submitTxRequest{
		SignerPayloadJSON: signerPayloadJSON,
		Signature:         signature,
		SignatureType:     c.signer.Type(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode submit request: %w", err)
	}

	data, err := c.httpClient.PostBytes(ctx, c.config.BaseURL+SUBMIT_PATH, nil, jsonContentType, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to submit extrinsic: %w", err)
	}

	var resp submitTxResponse
	if err := c.json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to decode submit response: %w", err)
	}
	if resp.Hash == "" {
		return "", fmt.Errorf("submit response has no extrinsic hash")
	}

	return resp.Hash, nil
}

// waitForResult polls the extrinsic status until it completes or the poll timeout is reached
func (c *client) waitForResult(ctx context.Context, hash string) (*extrinsicParsed, error) {
	statusURL := c.config.BaseURL + STATUS_PATH + "?hash=" + url.QueryEscape(hash)

	var parsed *extrinsicParsed
	operation := func() error {
		data, err := c.httpClient.GetBytes(ctx, statusURL, nil)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to fetch extrinsic status, retrying", zap.String("hash", hash), zap.Error(err))
			return err
		}

		var status extrinsicStatusResponse
		if err := c.json.Unmarshal(data, &status); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode extrinsic status: %w", err))
		}

		if status.IsError {
			reason := status.Status
			if status.Error != nil {
				reason = fmt.Sprintf("%s: %s", status.Error.Name, status.Error.Message)
			}
			return backoff.Permanent(fmt.Errorf("%w: %s", domain.ErrExtrinsicFailed, reason))
		}

		if !status.IsCompleted {
			logger.DebugCtx(ctx, "Extrinsic pending", zap.String("hash", hash), zap.String("status", status.Status))
			return errExtrinsicPending
		}

		if status.Parsed == nil {
			return backoff.Permanent(fmt.Errorf("completed extrinsic %s has no parsed result", hash))
		}

		parsed = status.Parsed
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.PollInterval
	b.MaxInterval = 4 * c.config.PollInterval
	b.MaxElapsedTime = c.config.PollTimeout
	b.Multiplier = 1.5
	b.RandomizationFactor = 0.2

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("extrinsic %s: %w", hash, err)
	}

	logger.InfoCtx(ctx, "Extrinsic completed",
		zap.String("hash", hash),
		zap.Uint64("collectionId", parsed.CollectionID),
		zap.Uint64("tokenId", parsed.TokenID),
	)

	return parsed, nil
}
