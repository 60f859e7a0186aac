package cli_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-race-nft/internal/cli"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/mocks"
	"github.com/feral-file/ff-race-nft/internal/providers/unique"
)

type testCLI struct {
	ledger   *mocks.MockLedgerClient
	images   *mocks.MockImageService
	query    *mocks.MockQueryClient
	opts     cli.Options
	cleanups int
}

func setupTestCLI(t *testing.T) *testCLI {
	ctrl := gomock.NewController(t)
	return &testCLI{
		ledger: mocks.NewMockLedgerClient(ctrl),
		images: mocks.NewMockImageService(ctrl),
		query:  mocks.NewMockQueryClient(ctrl),
	}
}

func (tc *testCLI) run(args ...string) (string, error) {
	root := cli.NewRootCmd(func(opts cli.Options) (*cli.Services, func(), error) {
		tc.opts = opts
		return &cli.Services{
			Ledger:                  tc.ledger,
			Images:                  tc.images,
			Query:                   tc.query,
			RaceCollectionID:        11,
			AchievementCollectionID: 12,
			PregenerateConcurrency:  2,
		}, func() { tc.cleanups++ }, nil
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCollectionCreate(t *testing.T) {
	tc := setupTestCLI(t)

	tc.ledger.EXPECT().
		CreateCollection(gomock.Any(), domain.CollectionKindAchievement, unique.CollectionRequest{
			Name:          "Race Achievements",
			Description:   "Unlocked in game",
			Symbol:        "RACH",
			CoverImageURL: "https://gw.example/ipfs/cover",
		}).
		Return(uint64(4242), nil)

	out, err := tc.run("collection", "create",
		"--kind", "Achievement",
		"--name", "Race Achievements",
		"--description", "Unlocked in game",
		"--symbol", "RACH",
		"--cover-image", "https://gw.example/ipfs/cover",
		"--config", "custom.yaml")

	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"achievement","collectionId":4242}`, out)
	assert.Equal(t, "custom.yaml", tc.opts.ConfigFile)
	assert.Equal(t, 1, tc.cleanups)
}

func TestCollectionCreateInvalidKind(t *testing.T) {
	tc := setupTestCLI(t)

	_, err := tc.run("collection", "create", "--kind", "trophy", "--name", "n", "--symbol", "S")

	assert.ErrorIs(t, err, domain.ErrInvalidCollectionKind)
}

func TestCollectionCreateMissingFlags(t *testing.T) {
	tc := setupTestCLI(t)

	_, err := tc.run("collection", "create", "--kind", "race")

	assert.Error(t, err)
	assert.Equal(t, 0, tc.cleanups)
}

func TestImagesPregenerate(t *testing.T) {
	tc := setupTestCLI(t)

	tc.images.EXPECT().
		Pregenerate(gomock.Any(), 3, 2).
		Return([]string{"bafy1", "bafy3"}, nil)

	out, err := tc.run("images", "pregenerate", "--count", "3")

	require.NoError(t, err)
	assert.JSONEq(t, `["bafy1","bafy3"]`, out)
}

func TestImagesPregenerateInvalidCount(t *testing.T) {
	tc := setupTestCLI(t)

	_, err := tc.run("images", "pregenerate", "--count", "0")

	assert.ErrorIs(t, err, cli.ErrInvalidCount)
}

func TestRacesList(t *testing.T) {
	t.Run("default collection", func(t *testing.T) {
		tc := setupTestCLI(t)

		tc.query.EXPECT().
			ListRaces(gomock.Any(), "5Grw", uint64(11)).
			Return(&domain.RaceListing{Races: []domain.RaceRecord{}, Skipped: []domain.SkippedToken{}}, nil)

		out, err := tc.run("races", "list", "--address", "5Grw")

		require.NoError(t, err)
		assert.JSONEq(t, `{"races":[],"skipped":[]}`, out)
	})

	t.Run("collection override", func(t *testing.T) {
		tc := setupTestCLI(t)

		tc.query.EXPECT().
			ListRaces(gomock.Any(), "5Grw", uint64(77)).
			Return(&domain.RaceListing{Races: []domain.RaceRecord{}, Skipped: []domain.SkippedToken{}}, nil)

		_, err := tc.run("races", "list", "--address", "5Grw", "--collection", "77")

		require.NoError(t, err)
	})

	t.Run("missing address", func(t *testing.T) {
		tc := setupTestCLI(t)

		_, err := tc.run("races", "list")

		assert.ErrorIs(t, err, cli.ErrAddressRequired)
	})

	t.Run("query failure", func(t *testing.T) {
		tc := setupTestCLI(t)

		tc.query.EXPECT().
			ListRaces(gomock.Any(), "5Grw", uint64(11)).
			Return(nil, errors.New("upstream down"))

		_, err := tc.run("races", "list", "--address", "5Grw")

		assert.ErrorContains(t, err, "upstream down")
	})
}

func TestAchievementsList(t *testing.T) {
	tc := setupTestCLI(t)

	tc.query.EXPECT().
		ListAchievements(gomock.Any(), "5Grw", uint64(12)).
		Return(&domain.AchievementListing{
			Achievements: []domain.AchievementRecord{{TokenID: 1, Title: "First Win"}},
			Skipped:      []domain.SkippedToken{},
		}, nil)

	out, err := tc.run("achievements", "list", "--address", "5Grw")

	require.NoError(t, err)
	assert.JSONEq(t, `{"achievements":[{"tokenId":1,"title":"First Win"}],"skipped":[]}`, out)
}

func TestFactoryError(t *testing.T) {
	root := cli.NewRootCmd(func(cli.Options) (*cli.Services, func(), error) {
		return nil, nil, errors.New("config missing")
	})
	root.SetArgs([]string{"races", "list", "--address", "5Grw"})
	root.SetOut(&bytes.Buffer{})

	assert.ErrorContains(t, root.Execute(), "config missing")
}
