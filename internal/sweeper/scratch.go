package sweeper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

const (
	DEFAULT_SCRATCH_SWEEP_INTERVAL = 10 * time.Minute
	DEFAULT_SCRATCH_MAX_AGE        = time.Hour
)

// ScratchSweeperConfig holds configuration for the scratch sweeper
type ScratchSweeperConfig struct {
	Dir      string        // Scratch directory to sweep
	Interval time.Duration // Time to sleep between sweep cycles
	MaxAge   time.Duration // Files older than this are removed
}

// ScratchSweeper removes scratch files left behind by interrupted mints.
// Every mint releases its own file, so anything older than MaxAge is an orphan.
type ScratchSweeper struct {
	config    ScratchSweeperConfig
	fs        adapter.FileSystem
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewScratchSweeper creates a new scratch sweeper
func NewScratchSweeper(config ScratchSweeperConfig, fs adapter.FileSystem, clock adapter.Clock) *ScratchSweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SCRATCH_SWEEP_INTERVAL
	}
	if config.MaxAge <= 0 {
		config.MaxAge = DEFAULT_SCRATCH_MAX_AGE
	}
	return &ScratchSweeper{
		config:    config,
		fs:        fs,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *ScratchSweeper) Name() string {
	return "scratch-sweeper"
}

// Start runs a sweep immediately and then once per interval
func (s *ScratchSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer close(s.stoppedCh)

	logger.InfoCtx(ctx, "Starting scratch sweeper",
		zap.String("dir", s.config.Dir),
		zap.Duration("interval", s.config.Interval),
		zap.Duration("max_age", s.config.MaxAge),
	)

	for {
		if _, err := s.Sweep(ctx); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("sweeper", s.Name()))
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Scratch sweeper stopping due to context cancellation")
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Scratch sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *ScratchSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Scratch sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// Sweep removes expired regular files from the scratch directory and returns how many were removed.
// A missing directory is not an error: nothing has been staged yet.
func (s *ScratchSweeper) Sweep(ctx context.Context) (int, error) {
	entries, err := s.fs.ReadDir(s.config.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list scratch directory: %w", err)
	}

	cutoff := s.clock.Now().Add(-s.config.MaxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Removed concurrently by its own mint
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(s.config.Dir, entry.Name())
		if err := s.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.WarnCtx(ctx, "Failed to remove expired scratch file", zap.String("path", path), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.InfoCtx(ctx, "Removed expired scratch files", zap.Int("count", removed))
	}

	return removed, nil
}
