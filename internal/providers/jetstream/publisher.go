package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/logger"
	"github.com/feral-file/ff-race-nft/internal/messaging"
)

const (
	// MINT_SUBJECT_FORMAT is the subject mint events are published to, e.g. nft.minted.race
	MINT_SUBJECT_FORMAT = "nft.minted.%s"
	// MINT_SUBJECT_WILDCARD binds every mint subject to the stream
	MINT_SUBJECT_WILDCARD = "nft.minted.>"
	// DUPLICATE_WINDOW is how long JetStream remembers event IDs for deduplication
	DUPLICATE_WINDOW = 10 * time.Minute
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type mintPublisher struct {
	conn adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON
}

// NewPublisher connects to NATS, makes sure the mint event stream exists and returns a publisher for it
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	conn, js, err := natsJS.Connect(cfg.URL,
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Lost NATS connection", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, natsjs.StreamConfig{
		Name:       cfg.StreamName,
		Subjects:   []string{MINT_SUBJECT_WILDCARD},
		Duplicates: DUPLICATE_WINDOW,
	})
	if err != nil {
		_ = conn.Drain()
		return nil, fmt.Errorf("failed to declare stream %s: %w", cfg.StreamName, err)
	}

	logger.InfoCtx(ctx, "Mint events will be published to NATS",
		zap.String("url", conn.ConnectedUrl()),
		zap.String("stream", cfg.StreamName),
	)

	return &mintPublisher{conn: conn, js: js, json: jsonAdapter}, nil
}

// PublishMint publishes a mint event; the event ID doubles as the JetStream message ID
func (p *mintPublisher) PublishMint(ctx context.Context, event *domain.MintEvent) error {
	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal mint event: %w", err)
	}

	subject := Subject(event.Kind)
	ack, err := p.js.Publish(ctx, subject, data, natsjs.WithMsgID(event.EventID))
	if err != nil {
		return fmt.Errorf("failed to publish mint event to %s: %w", subject, err)
	}

	logger.DebugCtx(ctx, "Published mint event",
		zap.String("subject", subject),
		zap.String("eventID", event.EventID),
		zap.Uint64("sequence", ack.Sequence),
		zap.Bool("duplicate", ack.Duplicate),
	)

	return nil
}

// Subject returns the subject for mint events of a collection kind
func Subject(kind domain.CollectionKind) string {
	return fmt.Sprintf(MINT_SUBJECT_FORMAT, kind)
}

// Close drains in-flight publishes before closing the connection
func (p *mintPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
	}
}
