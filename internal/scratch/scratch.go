package scratch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

// File is a staged scratch file. Release must be called once the file is no longer needed.
type File struct {
	Path string
	fs   adapter.FileSystem
}

// NewFile wraps an existing file so that Release removes it through fs
func NewFile(path string, fs adapter.FileSystem) *File {
	return &File{Path: path, fs: fs}
}

// Release removes the scratch file
func (f *File) Release(ctx context.Context) {
	if err := f.fs.Remove(f.Path); err != nil {
		logger.WarnCtx(ctx, "Failed to remove scratch file", zap.String("path", f.Path), zap.Error(err))
		return
	}
	logger.DebugCtx(ctx, "Cleaned up scratch file", zap.String("path", f.Path))
}

// Storage stages bytes on local disk under a unique name per call
//
//go:generate mockgen -source=scratch.go -destination=../mocks/scratch.go -package=mocks -mock_names=Storage=MockScratchStorage
type Storage interface {
	// Stage writes data to a new scratch file named <prefix>-<uuid><ext>
	Stage(ctx context.Context, prefix string, ext string, data []byte) (*File, error)
}

type storage struct {
	dir string
	fs  adapter.FileSystem
}

// NewStorage creates scratch storage rooted at dir
func NewStorage(dir string, fs adapter.FileSystem) Storage {
	return &storage{
		dir: dir,
		fs:  fs,
	}
}

// Stage writes data to a new scratch file named <prefix>-<uuid><ext>
func (s *storage) Stage(ctx context.Context, prefix string, ext string, data []byte) (*File, error) {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext))
	f, err := s.fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}

	staged := NewFile(path, s.fs)
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		staged.Release(ctx)
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		staged.Release(ctx)
		return nil, fmt.Errorf("failed to close scratch file: %w", err)
	}

	logger.DebugCtx(ctx, "Staged scratch file", zap.String("path", path), zap.Int("bytes", len(data)))
	return staged, nil
}
