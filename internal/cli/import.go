package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/game"
	scio "github.com/matzehuels/scorecard/pkg/io"
	"github.com/matzehuels/scorecard/pkg/repository"
)

// gameStore is a repository that accepts new games.
type gameStore interface {
	Put(ctx context.Context, key repository.Key, g *game.Game) error
}

// importCommand creates the import command, which stores game documents in
// the configured repository.
func (c *CLI) importCommand() *cobra.Command {
	var (
		date, away, home string
		gameNumber       int
	)

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Store game JSON documents in the repository",
		Long: `Store game JSON documents in the repository.

The key of each game is derived from its first pitch and team codes. Use
--date, --away, --home and --game to override it for a single file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override := date != "" || away != "" || home != ""
			if override && len(args) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "key flags apply to a single file")
			}
			cfg, err := c.config()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			repo, err := c.openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer repository.Close(context.Background(), repo)
			store, ok := repo.(gameStore)
			if !ok {
				return errors.New(errors.ErrCodeUnsupported, "repository does not accept imports")
			}

			for _, path := range args {
				g, err := scio.ImportJSON(path)
				if err != nil {
					return errors.Wrap(errors.ErrCodeFileNotFound, err, "read game")
				}
				if err := g.Validate(); err != nil {
					return err
				}
				key := keyFromGame(g)
				if override {
					key, err = repository.ParseKey(date, away, home, gameNumber)
					if err != nil {
						return err
					}
				}
				if key == (repository.Key{}) {
					return errors.New(errors.ErrCodeInvalidInput, "%s: cannot derive a game key; pass --date, --away and --home", path)
				}
				if err := store.Put(ctx, key, g); err != nil {
					return err
				}
				printSuccess("Imported %s", key)
				printDetail("ID: %s", key.ID())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "game date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&away, "away", "", "away team code")
	cmd.Flags().StringVar(&home, "home", "", "home team code")
	cmd.Flags().IntVar(&gameNumber, "game", 1, "game number for doubleheaders (1 or 2)")

	return cmd
}
