package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/pipeline"
	"github.com/matzehuels/scorecard/pkg/repository"
)

// batchCommand creates the batch command, which renders every stored game
// of a date.
func (c *CLI) batchCommand() *cobra.Command {
	var (
		opts        renderOpts
		outDir      string
		concurrency int
		keepGoing   bool
	)

	cmd := &cobra.Command{
		Use:   "batch <date>",
		Short: "Render every game of a date",
		Example: `  scorecard batch 2021-07-04 -d cards/
  scorecard batch 2021-07-04 -f pdf -j 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if concurrency < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "concurrency must be at least 1")
			}
			return c.runBatch(cmd.Context(), cfg, args[0], outDir, concurrency, keepGoing, &opts)
		},
	}

	cmd.Flags().StringVarP(&outDir, "dir", "d", ".", "output directory")
	cmd.Flags().IntVarP(&concurrency, "jobs", "j", defaultConcurrency, "number of games rendered in parallel")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "render the remaining games after a failure")
	opts.addFlags(cmd)

	return cmd
}

func (c *CLI) runBatch(ctx context.Context, cfg *Config, date, outDir string, concurrency int, keepGoing bool, opts *renderOpts) error {
	if _, err := errors.ValidateDate(date); err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, cfg, runnerOpts{noCache: opts.noCache, needsDB: true})
	if err != nil {
		return err
	}
	defer runner.Close()

	keys, err := runner.Repo.List(ctx, date)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		printInfo("No games stored for %s", date)
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering 0/%d", len(keys)))
	spinner.Start()
	results, failed := renderAll(ctx, runner, keys, opts, cfg, concurrency, keepGoing, func(done int) {
		spinner.Update("Rendering %d/%d", done, len(keys))
	})
	spinner.Stop()

	var firstErr, canceled error
	for i, key := range keys {
		if err := failed[i]; err != nil {
			if !reportable(err, keepGoing) {
				if canceled == nil {
					canceled = err
				}
				continue
			}
			printError("%s: %s", key, errors.UserMessage(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if results[i] == nil {
			continue
		}
		if err := writeArtifacts(results[i], filepath.Join(outDir, results[i].GameID)); err != nil {
			return err
		}
	}
	if firstErr == nil {
		firstErr = canceled
	}
	n := countDone(results)
	prog.done(fmt.Sprintf("Rendered %d of %d games", n, len(keys)))
	if firstErr != nil && keepGoing {
		printWarning("%d games failed", len(keys)-n)
	}
	return firstErr
}

// renderAll renders keys with at most concurrency renders in flight.
// Results and errors are indexed like keys. Unless keepGoing is set the
// first failure cancels the remaining renders.
func renderAll(ctx context.Context, runner *pipeline.Runner, keys []repository.Key, opts *renderOpts, cfg *Config,
	concurrency int, keepGoing bool, onDone func(done int)) ([]*pipeline.Result, []error) {
	results := make([]*pipeline.Result, len(keys))
	failed := make([]error, len(keys))
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, key := range keys {
		g.Go(func() error {
			req, err := opts.request(cfg, key)
			if err == nil {
				results[i], err = runner.Execute(gctx, req)
			}
			onDone(int(done.Add(1)))
			if err != nil {
				failed[i] = err
				if !keepGoing {
					return err
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return results, failed
}

// reportable reports whether a failed render deserves its own error line.
// Without keepGoing the first failure cancels the renders still queued, and
// their context.Canceled errors only echo that failure.
func reportable(err error, keepGoing bool) bool {
	return keepGoing || !stderrors.Is(err, context.Canceled)
}

func countDone(results []*pipeline.Result) int {
	n := 0
	for _, r := range results {
		if r != nil {
			n++
		}
	}
	return n
}
