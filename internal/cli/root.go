package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-race-nft/internal/mint"
	"github.com/feral-file/ff-race-nft/internal/providers/unique"
	"github.com/feral-file/ff-race-nft/internal/query"
)

// Services are the collaborators used by the admin commands
type Services struct {
	Ledger                  unique.Client
	Images                  mint.ImageService
	Query                   query.Client
	RaceCollectionID        uint64
	AchievementCollectionID uint64
	PregenerateConcurrency  int
}

// Options are the persistent flags shared by every command
type Options struct {
	ConfigFile string
	EnvPath    string
}

// ServicesFactory builds the services for a command run.
// The returned cleanup func is called once the command finishes.
type ServicesFactory func(opts Options) (*Services, func(), error)

// NewRootCmd creates the admin command tree
func NewRootCmd(factory ServicesFactory) *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:           "ff-race-nft-admin",
		Short:         "Administrative tasks for the race NFT backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "Path to configuration file")
	root.PersistentFlags().StringVar(&opts.EnvPath, "env", "config/", "Path to environment files")

	withServices := runWithServices(func(run func(cmd *cobra.Command, s *Services) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := factory(*opts)
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}
			return run(cmd, s)
		}
	})

	root.AddCommand(
		newCollectionCmd(withServices),
		newImagesCmd(withServices),
		newRacesCmd(withServices),
		newAchievementsCmd(withServices),
	)

	return root
}

type runWithServices func(run func(cmd *cobra.Command, s *Services) error) func(*cobra.Command, []string) error

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
