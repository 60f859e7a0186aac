package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestID(ctx))
}

func TestInfoCtx_AttachesRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	previous := log
	log = zap.New(core)
	defer func() { log = previous }()

	InfoCtx(WithRequestID(context.Background(), "req-abc"), "minting", zap.String("owner", "5F"))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-abc", fields["request_id"])
		assert.Equal(t, "5F", fields["owner"])
		assert.Equal(t, "minting", entries[0].Message)
	}
}
