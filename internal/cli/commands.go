package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/providers/unique"
)

var (
	ErrAddressRequired = errors.New("--address is required")
	ErrInvalidCount    = errors.New("--count must be positive")
)

func newCollectionCmd(withServices runWithServices) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage ledger collections",
	}

	var kind string
	var req unique.CollectionRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a collection with the fixed race or achievement schema",
		RunE: withServices(func(cmd *cobra.Command, s *Services) error {
			k, err := domain.ParseCollectionKind(kind)
			if err != nil {
				return err
			}

			id, err := s.Ledger.CreateCollection(cmd.Context(), k, req)
			if err != nil {
				return fmt.Errorf("failed to create %s collection: %w", k, err)
			}

			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"kind":         k,
				"collectionId": id,
			})
		}),
	}
	create.Flags().StringVar(&kind, "kind", "", "Collection kind: race or achievement")
	create.Flags().StringVar(&req.Name, "name", "", "Collection name")
	create.Flags().StringVar(&req.Description, "description", "", "Collection description")
	create.Flags().StringVar(&req.Symbol, "symbol", "", "Token prefix symbol")
	create.Flags().StringVar(&req.CoverImageURL, "cover-image", "", "Cover image URL")
	_ = create.MarkFlagRequired("kind")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("symbol")

	cmd.AddCommand(create)
	return cmd
}

func newImagesCmd(withServices runWithServices) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage generated images",
	}

	var count int
	pregenerate := &cobra.Command{
		Use:   "pregenerate",
		Short: "Generate and pin a batch of images, printing their CIDs",
		RunE: withServices(func(cmd *cobra.Command, s *Services) error {
			if count <= 0 {
				return ErrInvalidCount
			}

			cids, err := s.Images.Pregenerate(cmd.Context(), count, s.PregenerateConcurrency)
			if err != nil {
				return fmt.Errorf("failed to pregenerate images: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), cids)
		}),
	}
	pregenerate.Flags().IntVar(&count, "count", 1, "Number of images to generate")

	cmd.AddCommand(pregenerate)
	return cmd
}

func newRacesCmd(withServices runWithServices) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "races",
		Short: "Inspect race tokens",
	}

	var address string
	var collectionID uint64
	list := &cobra.Command{
		Use:   "list",
		Short: "List the race records held by an address",
		RunE: withServices(func(cmd *cobra.Command, s *Services) error {
			if address == "" {
				return ErrAddressRequired
			}
			if collectionID == 0 {
				collectionID = s.RaceCollectionID
			}

			listing, err := s.Query.ListRaces(cmd.Context(), address, collectionID)
			if err != nil {
				return fmt.Errorf("failed to list races: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), listing)
		}),
	}
	list.Flags().StringVar(&address, "address", "", "Owner address")
	list.Flags().Uint64Var(&collectionID, "collection", 0, "Collection id (defaults to the configured race collection)")

	cmd.AddCommand(list)
	return cmd
}

func newAchievementsCmd(withServices runWithServices) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Inspect achievement tokens",
	}

	var address string
	var collectionID uint64
	list := &cobra.Command{
		Use:   "list",
		Short: "List the achievement records held by an address",
		RunE: withServices(func(cmd *cobra.Command, s *Services) error {
			if address == "" {
				return ErrAddressRequired
			}
			if collectionID == 0 {
				collectionID = s.AchievementCollectionID
			}

			listing, err := s.Query.ListAchievements(cmd.Context(), address, collectionID)
			if err != nil {
				return fmt.Errorf("failed to list achievements: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), listing)
		}),
	}
	list.Flags().StringVar(&address, "address", "", "Owner address")
	list.Flags().Uint64Var(&collectionID, "collection", 0, "Collection id (defaults to the configured achievement collection)")

	cmd.AddCommand(list)
	return cmd
}
