package mint_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/downloader"
	"github.com/feral-file/ff-race-nft/internal/mint"
	"github.com/feral-file/ff-race-nft/internal/mocks"
	"github.com/feral-file/ff-race-nft/internal/providers/unique"
	"github.com/feral-file/ff-race-nft/internal/scratch"
)

const (
	player     = "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"
	gateway    = "https://gw.example"
	sourceURL  = "https://oai.example/generated.png"
	pinnedCID  = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	pinnedURL  = gateway + "/ipfs/" + pinnedCID
	raceColl   = uint64(688)
	achColl    = uint64(689)
	imageBytes = "png-bytes"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

type mintMocks struct {
	ctrl       *gomock.Controller
	generator  *mocks.MockImageGenerator
	downloader *mocks.MockDownloader
	scratch    *mocks.MockScratchStorage
	pinner     *mocks.MockPinner
	ledger     *mocks.MockLedgerClient
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
}

func setupMint(t *testing.T) *mintMocks {
	ctrl := gomock.NewController(t)
	return &mintMocks{
		ctrl:       ctrl,
		generator:  mocks.NewMockImageGenerator(ctrl),
		downloader: mocks.NewMockDownloader(ctrl),
		scratch:    mocks.NewMockScratchStorage(ctrl),
		pinner:     mocks.NewMockPinner(ctrl),
		ledger:     mocks.NewMockLedgerClient(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
}

func (m *mintMocks) deps(storage scratch.Storage) mint.Deps {
	if storage == nil {
		storage = m.scratch
	}
	return mint.Deps{
		Generator:  m.generator,
		Downloader: m.downloader,
		Scratch:    storage,
		Pinner:     m.pinner,
		Ledger:     m.ledger,
		Publisher:  m.publisher,
		Clock:      m.clock,
	}
}

func (m *mintMocks) orchestrator(storage scratch.Storage) mint.Orchestrator {
	return mint.NewOrchestrator(m.deps(storage), mint.Config{
		RaceCollectionID:        raceColl,
		AchievementCollectionID: achColl,
		GatewayURL:              gateway + "/",
	})
}

// stagedFile writes a real file so that Release can remove it
func stagedFile(t *testing.T) *scratch.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "race_nft_image-test.png")
	require.NoError(t, os.WriteFile(path, []byte(imageBytes), 0o600))
	return scratch.NewFile(path, adapter.NewFileSystem())
}

func TestMintRace_RunsStepsInOrder(t *testing.T) {
	m := setupMint(t)
	defer m.ctrl.Finish()

	race := domain.RaceResult{
		Score:         int64Ptr(1000),
		FastestLap:    float64Ptr(75),
		LapTimes:      []float64{78, 76, 75, 77},
		TopSpeed:      float64Ptr(280),
		AverageSpeed:  float64Ptr(220),
		Crashes:       int64Ptr(0),
		TotalRaceTime: float64Ptr(306),
		CarType:       int64Ptr(1),
		PlayerCount:   int64Ptr(8),
		PlayerAddress: player,
	}
	staged := stagedFile(t)
	now := time.Date(2024, 7, 27, 16, 0, 0, 0, time.UTC)
	ctx := context.Background()

	gomock.InOrder(
		m.generator.EXPECT().Generate(ctx, "").Return(sourceURL, nil),
		m.downloader.EXPECT().Download(ctx, sourceURL).
			Return(&downloader.Image{Data: []byte(imageBytes), MimeType: "image/png", Extension: ".png"}, nil),
		m.scratch.EXPECT().Stage(ctx, mint.RACE_IMAGE_PREFIX, ".png", []byte(imageBytes)).Return(staged, nil),
		m.pinner.EXPECT().Pin(ctx, staged.Path).Return(pinnedCID, nil),
		m.ledger.EXPECT().MintToken(ctx, unique.MintRequest{
			CollectionID: raceColl,
			Owner:        player,
			ImageURL:     pinnedURL,
			Attributes:   domain.RaceAttributes(race),
		}).Return(&domain.MintedToken{CollectionID: raceColl, TokenID: 42, Owner: player}, nil),
		m.clock.EXPECT().Now().Return(now),
		m.publisher.EXPECT().PublishMint(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.MintEvent) error {
				assert.NotEmpty(t, event.EventID)
				assert.Equal(t, domain.CollectionKindRace, event.Kind)
				assert.Equal(t, raceColl, event.CollectionID)
				assert.Equal(t, uint64(42), event.TokenID)
				assert.Equal(t, pinnedCID, event.ImageCID)
				assert.Equal(t, pinnedURL, event.ImageURL)
				assert.Equal(t, now, event.MintedAt)
				return nil
			}),
	)

	res, err := m.orchestrator(nil).MintRace(ctx, race)
	require.NoError(t, err)
	assert.Equal(t, &domain.MintResult{
		Message:        "NFT minted successfully!",
		TokenID:        42,
		Owner:          player,
		ImageURL:       sourceURL,
		PinnedImageURL: pinnedURL,
	}, res)

	_, err = os.Stat(staged.Path)
	assert.True(t, os.IsNotExist(err), "scratch file must be removed")
}

func TestMintAchievement(t *testing.T) {
	m := setupMint(t)
	defer m.ctrl.Finish()

	achievement := domain.Achievement{
		Title:         "Flawless Victory",
		Description:   "Complete a race without crashing",
		Points:        100,
		PlayerAddress: player,
	}
	staged := stagedFile(t)

	gomock.InOrder(
		m.generator.EXPECT().Generate(gomock.Any(), "").Return(sourceURL, nil),
		m.downloader.EXPECT().Download(gomock.Any(), sourceURL).
			Return(&downloader.Image{Data: []byte(imageBytes), Extension: ".png"}, nil),
		m.scratch.EXPECT().Stage(gomock.Any(), mint.ACHIEVEMENT_IMAGE_PREFIX, ".png", gomock.Any()).Return(staged, nil),
		m.pinner.EXPECT().Pin(gomock.Any(), staged.Path).Return(pinnedCID, nil),
		m.ledger.EXPECT().MintToken(gomock.Any(), unique.MintRequest{
			CollectionID: achColl,
			Owner:        player,
			ImageURL:     pinnedURL,
			Attributes:   domain.AchievementAttributes(achievement),
		}).Return(&domain.MintedToken{CollectionID: achColl, TokenID: 7, Owner: player}, nil),
		m.clock.EXPECT().Now().Return(time.Now()),
		m.publisher.EXPECT().PublishMint(gomock.Any(), gomock.Any()).Return(nil),
	)

	res, err := m.orchestrator(nil).MintAchievement(context.Background(), achievement)
	require.NoError(t, err)
	assert.Equal(t, "Achievement NFT minted successfully!", res.Message)
	assert.Equal(t, uint64(7), res.TokenID)
	assert.Equal(t, sourceURL, res.ImageURL)
	assert.Equal(t, pinnedURL, res.PinnedImageURL)
}

func TestMintRace_GenerationFailureAbortsBeforeAnyOtherStep(t *testing.T) {
	m := setupMint(t)
	defer m.ctrl.Finish()

	// no other expectations: any further call fails the test
	m.generator.EXPECT().Generate(gomock.Any(), "").
		Return("", fmt.Errorf("%w: provider returned no image", domain.ErrImageGenerationFailed))

	res, err := m.orchestrator(nil).MintRace(context.Background(), domain.RaceResult{PlayerAddress: player})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrImageGenerationFailed)
}

func TestMintRace_PinFailureReleasesScratchAndSkipsMint(t *testing.T) {
	m := setupMint(t)
	defer m.ctrl.Finish()

	staged := stagedFile(t)
	upstream := errors.New("pinata unavailable")

	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(sourceURL, nil)
	m.downloader.EXPECT().Download(gomock.Any(), sourceURL).Return(&downloader.Image{Data: []byte(imageBytes), Extension: ".png"}, nil)
	m.scratch.EXPECT().Stage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(staged, nil)
	m.pinner.EXPECT().Pin(gomock.Any(), staged.Path).Return("", upstream)

	_, err := m.orchestrator(nil).MintRace(context.Background(), domain.RaceResult{PlayerAddress: player})
	assert.ErrorIs(t, err, upstream)

	_, statErr := os.Stat(staged.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMintRace_DownloadFailure(t *testing.T) {
	m := setupMint(t)
	defer m.ctrl.Finish()

	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(sourceURL, nil)
	m.downloader.EXPECT().Download(gomock.Any(), sourceURL).Return(nil, domain.ErrNotAnImage)

	_, err := m.orchestrator(nil).MintRace(context.Background(), domain.RaceResult{PlayerAddress: player})
	assert.ErrorIs(t, err, domain.ErrNotAnImage)
}

func TestMintRace_LedgerFailure(t *testing.T) {
	m := setupMint(t)
	defer m.ctrl.Finish()

	staged := stagedFile(t)
	upstream := fmt.Errorf("%w: balance too low", domain.ErrExtrinsicFailed)

	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(sourceURL, nil)
	m.downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Return(&downloader.Image{Data: []byte(imageBytes), Extension: ".png"}, nil)
	m.scratch.EXPECT().Stage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(staged, nil)
	m.pinner.EXPECT().Pin(gomock.Any(), gomock.Any()).Return(pinnedCID, nil)
	m.ledger.EXPECT().MintToken(gomock.Any(), gomock.Any()).Return(nil, upstream)

	_, err := m.orchestrator(nil).MintRace(context.Background(), domain.RaceResult{PlayerAddress: player})
	assert.ErrorIs(t, err, domain.ErrExtrinsicFailed)
}

func TestMintRace_PublishFailureDoesNotFailMint(t *testing.T) {
	m := setupMint(t)
	defer m.ctrl.Finish()

	staged := stagedFile(t)

	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(sourceURL, nil)
	m.downloader.EXPECT().Download(gomock.Any(), gomock.Any()).Return(&downloader.Image{Data: []byte(imageBytes), Extension: ".png"}, nil)
	m.scratch.EXPECT().Stage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(staged, nil)
	m.pinner.EXPECT().Pin(gomock.Any(), gomock.Any()).Return(pinnedCID, nil)
	m.ledger.EXPECT().MintToken(gomock.Any(), gomock.Any()).Return(&domain.MintedToken{TokenID: 1, Owner: player}, nil)
	m.clock.EXPECT().Now().Return(time.Now())
	m.publisher.EXPECT().PublishMint(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	res, err := m.orchestrator(nil).MintRace(context.Background(), domain.RaceResult{PlayerAddress: player})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.TokenID)
}

func TestMintRace_ConcurrentMintsUseIsolatedScratchFiles(t *testing.T) {
	m := setupMint(t)
	defer m.ctrl.Finish()

	storage := scratch.NewStorage(t.TempDir(), adapter.NewFileSystem())
	orch := m.orchestrator(storage)

	const n = 16
	var mu sync.Mutex
	pinnedPaths := map[string]bool{}
	pinnedContent := map[string]string{}

	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			return ctx.Value(ctxKey{}).(string), nil
		}).Times(n)
	m.downloader.EXPECT().Download(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url string) (*downloader.Image, error) {
			return &downloader.Image{Data: []byte("bytes-of-" + url), Extension: ".png"}, nil
		}).Times(n)
	m.pinner.EXPECT().Pin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, path string) (string, error) {
			time.Sleep(5 * time.Millisecond)
			data, err := os.ReadFile(path)
			if !assert.NoError(t, err) {
				return "", err
			}

			mu.Lock()
			defer mu.Unlock()
			assert.False(t, pinnedPaths[path], "scratch path shared: %s", path)
			pinnedPaths[path] = true
			pinnedContent[ctx.Value(ctxKey{}).(string)] = string(data)
			return pinnedCID, nil
		}).Times(n)
	m.ledger.EXPECT().MintToken(gomock.Any(), gomock.Any()).
		Return(&domain.MintedToken{TokenID: 1, Owner: player}, nil).Times(n)
	m.clock.EXPECT().Now().Return(time.Now()).Times(n)
	m.publisher.EXPECT().PublishMint(gomock.Any(), gomock.Any()).Return(nil).Times(n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := context.WithValue(context.Background(), ctxKey{}, fmt.Sprintf("https://oai.example/%d.png", i))
			_, err := orch.MintRace(ctx, domain.RaceResult{PlayerAddress: player})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, pinnedPaths, n)
	for url, content := range pinnedContent {
		assert.Equal(t, "bytes-of-"+url, content)
	}
	for path := range pinnedPaths {
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	}
}

type ctxKey struct{}
