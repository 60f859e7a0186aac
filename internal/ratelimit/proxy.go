package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-race-nft/internal/logger"
)

// ErrProxyClosed is returned for requests submitted after Close
var ErrProxyClosed = errors.New("proxy is closed")

// RequestFunc is a function that performs the actual API request
// It receives a context and returns the result and any error
type RequestFunc func(ctx context.Context) (interface{}, error)

// requestResult wraps the result and error of a request
type requestResult struct {
	value interface{}
	err   error
}

// Config holds the worker and rate limits applied to upstream reads
type Config struct {
	// MaxWorkers caps the number of requests in flight
	MaxWorkers int
	// RequestsPerSecond caps the request rate
	RequestsPerSecond float64
	// Burst is the number of requests allowed at once, defaults to 1
	Burst int
	// MaxQueueTime bounds how long a request may wait for a token
	MaxQueueTime time.Duration
}

// Proxy defines the interface for rate-limiting proxy
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request submits a rate-limited request for execution and blocks until it completes
	Request(ctx context.Context, fn RequestFunc) (interface{}, error)

	// Close gracefully shuts down the proxy
	Close() error
}

// proxy is the concrete implementation of the rate-limiting proxy
type proxy struct {
	config    Config
	pool      pond.ResultPool[*requestResult]
	limiter   *rate.Limiter
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewProxy creates a new rate-limiting proxy
func NewProxy(cfg Config) (Proxy, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	p := &proxy{
		config:  cfg,
		pool:    pond.NewResultPool[*requestResult](cfg.MaxWorkers),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}

	logger.Info("Rate limit proxy initialized",
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Float64("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
	)

	return p, nil
}

// Request submits a rate-limited request for execution and returns the result with type safety
func Request[T any](ctx context.Context, p Proxy, fn func(ctx context.Context) (T, error)) (T, error) {
	// If proxy is nil, execute the function directly
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Request submits a rate-limited request for execution and returns the result as interface{}
// The function blocks until:
// 1. A token is acquired and the request completes
// 2. The context is canceled
// 3. The maximum queue time is exceeded
func (p *proxy) Request(ctx context.Context, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	resultTask := p.pool.Submit(func() *requestResult {
		value, err := p.executeWithRateLimit(ctx, fn)
		return &requestResult{value: value, err: err}
	})

	result, err := resultTask.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.value, nil
}

// executeWithRateLimit executes the request after acquiring a rate limit token
func (p *proxy) executeWithRateLimit(ctx context.Context, fn RequestFunc) (interface{}, error) {
	queueCtx, cancel := context.WithTimeout(ctx, p.config.MaxQueueTime)
	err := p.limiter.Wait(queueCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire rate limit token: %w", err)
	}

	// Execute the request - no timeout wrapper here, let HTTP adapter handle it
	return fn(ctx)
}

// Close gracefully shuts down the proxy
// It waits for in-flight requests to complete
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)

		logger.Info("Shutting down rate limit proxy")

		if errTasks := p.pool.Stop().Wait(); errTasks != nil {
			logger.Warn("Error waiting for pool tasks to complete", zap.Error(errTasks))
			err = errTasks
		}

		logger.Info("Rate limit proxy shutdown complete")
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if cfg.MaxWorkers <= 0 {
		return fmt.Errorf("max_workers must be positive")
	}

	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}

	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	if cfg.MaxQueueTime <= 0 {
		cfg.MaxQueueTime = time.Minute
	}

	return nil
}
