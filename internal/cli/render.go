package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/game"
	scio "github.com/matzehuels/scorecard/pkg/io"
	"github.com/matzehuels/scorecard/pkg/pipeline"
	"github.com/matzehuels/scorecard/pkg/repository"
)

// renderOpts holds the command-line flags shared by render, batch and pick.
type renderOpts struct {
	output       string  // output file (single format) or base path
	formats      string  // comma-separated formats; empty uses the config
	file         string  // game JSON file instead of a repository lookup
	gameNumber   int     // doubleheader game number
	scale        float64 // PNG scale
	inlineStats  bool    // print batter rates under each name
	inningTotals bool    // print recorded half-inning stats
	noCache      bool
	refresh      bool
}

func (o *renderOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.formats, "format", "f", "", "output format(s): svg (default), pdf, png (comma-separated)")
	cmd.Flags().Float64Var(&o.scale, "scale", 0, "PNG scale factor (default 1)")
	cmd.Flags().BoolVar(&o.inlineStats, "inline-stats", false, "print OBP/SLG under each batter")
	cmd.Flags().BoolVar(&o.inningTotals, "inning-totals", false, "fill inning boxes with recorded stats")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "ignore cached renders")
}

// request builds a pipeline request for key with the configured defaults.
func (o *renderOpts) request(cfg *Config, key repository.Key) (pipeline.Request, error) {
	formats, err := cfg.formats(o.formats)
	if err != nil {
		return pipeline.Request{}, err
	}
	scale := o.scale
	if scale == 0 {
		scale = cfg.Render.Scale
	}
	return pipeline.Request{
		Key:          key,
		Formats:      formats,
		Scale:        scale,
		InlineStats:  o.inlineStats,
		InningTotals: o.inningTotals,
		Refresh:      o.refresh,
	}, nil
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{gameNumber: 1}

	cmd := &cobra.Command{
		Use:   "render [date away home]",
		Short: "Render one game to a scorecard",
		Long: `Render one game to a scorecard.

The game is looked up by date and team codes in the configured repository,
or read from a JSON game document with --file:

  scorecard render 2021-07-04 CHC STL
  scorecard render 2021-07-04 NYY BOS --game 2 -f svg,pdf
  scorecard render --file game.json -o card.png --scale 0.5`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.file != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return c.completeTeams(ctx, args), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.file, "file", "", "render a game JSON document instead of a stored game")
	cmd.Flags().IntVar(&opts.gameNumber, "game", opts.gameNumber, "game number for doubleheaders (1 or 2)")
	opts.addFlags(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, cfg *Config, args []string, opts *renderOpts) error {
	var (
		key repository.Key
		g   *game.Game
		err error
	)
	if opts.file != "" {
		g, err = scio.ImportJSON(opts.file)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "read game")
		}
		key = keyFromGame(g)
	} else {
		key, err = repository.ParseKey(args[0], args[1], args[2], opts.gameNumber)
		if err != nil {
			return err
		}
	}

	req, err := opts.request(cfg, key)
	if err != nil {
		return err
	}
	req.Game = g

	runner, err := c.newRunner(ctx, cfg, runnerOpts{noCache: opts.noCache, needsDB: g == nil})
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, "Rendering "+describe(key, g)+"...")
	spinner.Start()
	res, err := runner.Execute(ctx, req)
	spinner.Stop()
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", describe(key, g))
	if err := writeArtifacts(res, opts.output); err != nil {
		return err
	}
	fmt.Println(renderStats(req.Formats, res.Stats.Bytes, res.CacheHit))
	return nil
}

// writeArtifacts writes every artifact of res and prints the paths.
func writeArtifacts(res *pipeline.Result, output string) error {
	formats := make([]string, 0, len(res.Artifacts))
	for _, f := range []string{pipeline.FormatSVG, pipeline.FormatPDF, pipeline.FormatPNG} {
		if _, ok := res.Artifacts[f]; ok {
			formats = append(formats, f)
		}
	}
	for _, f := range formats {
		path := outputPath(output, res.GameID, f, len(formats) > 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, res.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPath picks the file name for one format.
//
// Without -o the game ID names the file. A single format with a matching
// extension uses -o verbatim; otherwise -o is a base path.
func outputPath(output, gameID, format string, multi bool) string {
	if output == "" {
		return gameID + "." + format
	}
	ext := filepath.Ext(output)
	if !multi && strings.EqualFold(ext, "."+format) {
		return output
	}
	if ext == ".svg" || ext == ".pdf" || ext == ".png" {
		output = strings.TrimSuffix(output, ext)
	}
	return output + "." + format
}

// keyFromGame derives a repository key from a game document, or returns the
// zero key when the game lacks a date or team codes.
func keyFromGame(g *game.Game) repository.Key {
	if g.Away == nil || g.Home == nil {
		return repository.Key{}
	}
	start := g.FirstPitch()
	if start.IsZero() {
		return repository.Key{}
	}
	if loc, err := time.LoadLocation(g.Timezone); err == nil && g.Timezone != "" {
		start = start.In(loc)
	}
	key, err := repository.ParseKey(start.Format(errors.DateLayout), g.Away.Abbreviation, g.Home.Abbreviation, max(g.GameNumber, 1))
	if err != nil {
		return repository.Key{}
	}
	return key
}

// completeTeams suggests the away team (after a date) or the home team
// (after a date and an away team) from the games stored for that date.
func (c *CLI) completeTeams(ctx context.Context, args []string) []string {
	if len(args) == 0 || len(args) > 2 {
		return nil
	}
	cfg, err := c.config()
	if err != nil {
		return nil
	}
	repo, err := c.openRepository(ctx, cfg)
	if err != nil {
		return nil
	}
	defer repository.Close(ctx, repo)

	keys, err := repo.List(ctx, args[0])
	if err != nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, k := range keys {
		code := k.Away
		if len(args) == 2 {
			if !strings.EqualFold(k.Away, args[1]) {
				continue
			}
			code = k.Home
		}
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}
	return out
}

func describe(key repository.Key, g *game.Game) string {
	if g != nil {
		return g.Title()
	}
	return key.String()
}
