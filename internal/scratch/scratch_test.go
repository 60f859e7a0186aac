package scratch_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/scratch"
)

func TestStage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "scratch")
	storage := scratch.NewStorage(dir, adapter.NewFileSystem())
	ctx := context.Background()

	f, err := storage.Stage(ctx, "race_nft_image", ".png", []byte("image-bytes"))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(f.Path))
	assert.True(t, strings.HasPrefix(filepath.Base(f.Path), "race_nft_image-"))
	assert.True(t, strings.HasSuffix(f.Path, ".png"))

	data, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	f.Release(ctx)
	_, err = os.Stat(f.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestStage_ConcurrentCallsNeverShareAPath(t *testing.T) {
	storage := scratch.NewStorage(t.TempDir(), adapter.NewFileSystem())
	ctx := context.Background()

	const n = 32
	paths := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, err := storage.Stage(ctx, "race_nft_image", ".png", []byte(fmt.Sprintf("payload-%d", i)))
			require.NoError(t, err)
			paths[i] = f.Path
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for i, p := range paths {
		assert.False(t, seen[p], "path reused: %s", p)
		seen[p] = true

		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("payload-%d", i), string(data))
	}
}

func TestStage_MkdirFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	storage := scratch.NewStorage(filepath.Join(blocker, "scratch"), adapter.NewFileSystem())
	_, err := storage.Stage(context.Background(), "p", ".png", []byte("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create scratch directory")
}
