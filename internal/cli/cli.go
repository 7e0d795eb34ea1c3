// Package cli implements the scorecard command-line interface.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scorecard/pkg/buildinfo"
	"github.com/matzehuels/scorecard/pkg/cache"
	"github.com/matzehuels/scorecard/pkg/observability"
	"github.com/matzehuels/scorecard/pkg/pipeline"
	"github.com/matzehuels/scorecard/pkg/repository"
	"github.com/matzehuels/scorecard/pkg/scorecard"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "scorecard"

	// defaultConcurrency bounds parallel renders in batch mode.
	defaultConcurrency = 4
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level every pipeline,
// repository and cache event is logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetRenderHooks(hooks)
		observability.SetRepositoryHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetServerHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "scorecard",
		Short:        "Scorecard renders printable baseball scorecards",
		Long:         `Scorecard renders recorded baseball games as printable two-page scorecards in SVG, PDF or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/scorecard/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// runnerOpts are per-invocation overrides of the config file.
type runnerOpts struct {
	noCache bool
	needsDB bool // false when every request carries its own game
}

// newRunner builds a pipeline runner from the loaded config.
// The caller must Close the runner.
func (c *CLI) newRunner(ctx context.Context, cfg *Config, opts runnerOpts) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, cfg, opts.noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewDefaultKeyer()
	if cfg.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(keyer, cfg.Cache.Prefix)
	}

	var repo repository.GameRepository
	if opts.needsDB {
		inner, err := c.openRepository(ctx, cfg)
		if err != nil {
			_ = ch.Close()
			return nil, err
		}
		repo = repository.NewCachedRepository(inner, ch, keyer, 0)
	}

	renderer := scorecard.New(scorecard.WithLogos(scorecard.DefaultLogos().With(cfg.Render.Logos)))
	if cfg.Render.InlineStats {
		renderer = renderer.With(scorecard.WithInlineStats())
	}
	if cfg.Render.InningTotals {
		renderer = renderer.With(scorecard.WithInningTotals())
	}
	return pipeline.NewRunner(repo, ch, keyer, renderer, c.Logger), nil
}

// newCache returns the configured cache backend.
func (c *CLI) newCache(ctx context.Context, cfg *Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.Redis.URL != "" {
		c.Logger.Debug("using redis cache")
		var rc *cache.RedisCache
		err := cache.RetryWithBackoff(ctx, func() error {
			var err error
			rc, err = cache.NewRedisCache(ctx, cfg.Redis.URL)
			if stderrors.Is(err, cache.ErrBackend) {
				c.Logger.Debug("redis unavailable, retrying", "err", err)
				return cache.Retryable(err)
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	c.Logger.Debug("using file cache", "dir", dir)
	return cache.NewFileCache(dir)
}

// openRepository returns the configured game store.
func (c *CLI) openRepository(ctx context.Context, cfg *Config) (repository.GameRepository, error) {
	if cfg.Mongo.URI != "" {
		c.Logger.Debug("using mongo repository", "database", cfg.Mongo.Database, "collection", cfg.Mongo.Collection)
		return repository.NewMongoRepository(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	}
	dir, err := cfg.gamesDir()
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("using file repository", "dir", dir)
	return repository.NewFileRepository(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/scorecard/).
func cacheDir() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

// configDir returns the config directory (~/.config/scorecard/).
func configDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// dataDir returns the data directory (~/.local/share/scorecard/).
func dataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}
