package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-race-nft/internal/ratelimit"
)

func TestNewProxy_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  ratelimit.Config
	}{
		{name: "no workers", cfg: ratelimit.Config{RequestsPerSecond: 10}},
		{name: "no rate", cfg: ratelimit.Config{MaxWorkers: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ratelimit.NewProxy(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestRequest_ReturnsTypedResult(t *testing.T) {
	p, err := ratelimit.NewProxy(ratelimit.Config{MaxWorkers: 2, RequestsPerSecond: 1000, Burst: 10})
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	got, err := ratelimit.Request(context.Background(), p, func(ctx context.Context) (string, error) {
		return "token-1", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)

	upstream := errors.New("boom")
	_, err = ratelimit.Request(context.Background(), p, func(ctx context.Context) (int, error) {
		return 0, upstream
	})
	assert.ErrorIs(t, err, upstream)
}

func TestRequest_NilProxyRunsDirectly(t *testing.T) {
	got, err := ratelimit.Request(context.Background(), nil, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestRequest_BoundsConcurrency(t *testing.T) {
	const workers = 3
	p, err := ratelimit.NewProxy(ratelimit.Config{MaxWorkers: workers, RequestsPerSecond: 10000, Burst: 100})
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	var inFlight, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Request(context.Background(), func(ctx context.Context) (interface{}, error) {
				n := inFlight.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return nil, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(workers))
	assert.Positive(t, peak.Load())
}

func TestRequest_RateLimited(t *testing.T) {
	p, err := ratelimit.NewProxy(ratelimit.Config{MaxWorkers: 10, RequestsPerSecond: 20, Burst: 1})
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	start := time.Now()
	for i := 0; i < 5; i++ {
		_, err := p.Request(context.Background(), func(ctx context.Context) (interface{}, error) { return nil, nil })
		require.NoError(t, err)
	}
	// first token is immediate, the next four are spaced 50ms apart
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestRequest_CanceledContext(t *testing.T) {
	p, err := ratelimit.NewProxy(ratelimit.Config{MaxWorkers: 1, RequestsPerSecond: 0.001, Burst: 1})
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	// consume the only token
	_, err = p.Request(context.Background(), func(ctx context.Context) (interface{}, error) { return nil, nil })
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	_, err = p.Request(ctx, func(ctx context.Context) (interface{}, error) {
		called = true
		return nil, nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestClose(t *testing.T) {
	p, err := ratelimit.NewProxy(ratelimit.Config{MaxWorkers: 1, RequestsPerSecond: 100})
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	_, err = p.Request(context.Background(), func(ctx context.Context) (interface{}, error) { return nil, nil })
	assert.ErrorIs(t, err, ratelimit.ErrProxyClosed)
}
