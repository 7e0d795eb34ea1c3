package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/scorecard/pkg/cache"
	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/game"
	scio "github.com/matzehuels/scorecard/pkg/io"
	"github.com/matzehuels/scorecard/pkg/observability"
	"github.com/matzehuels/scorecard/pkg/render"
	"github.com/matzehuels/scorecard/pkg/repository"
	"github.com/matzehuels/scorecard/pkg/scorecard"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it to avoid duplicating caching logic.
//
// The Runner holds no per-request state. Multiple goroutines can safely
// share one Runner.
type Runner struct {
	Repo     repository.GameRepository
	Cache    cache.Cache
	Keyer    cache.Keyer
	Renderer *scorecard.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner.
// A nil cache disables caching, a nil keyer uses the default layout, a nil
// renderer uses scorecard.New() and a nil logger discards output. repo may
// be nil when every request carries its own game.
func NewRunner(repo repository.GameRepository, c cache.Cache, keyer cache.Keyer, renderer *scorecard.Renderer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if renderer == nil {
		renderer = scorecard.New()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Repo:     repo,
		Cache:    c,
		Keyer:    keyer,
		Renderer: renderer,
		Logger:   logger,
	}
}

// Execute fetches the game, renders it and converts it to every requested
// format. Artifacts are served from the cache when all formats are present.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	if err := req.setDefaults(); err != nil {
		return nil, err
	}
	result := &Result{
		GameID:    req.gameID(),
		RenderID:  uuid.NewString(),
		Artifacts: make(map[string][]byte, len(req.Formats)),
	}
	logger := r.Logger.With("game", result.GameID, "render", result.RenderID)

	fetchStart := time.Now()
	g, err := r.fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	result.Stats.FetchTime = time.Since(fetchStart)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("fetched game", "title", g.Title(), "duration", result.Stats.FetchTime)

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, result.GameID, req.Formats)
	renderStart := time.Now()
	artifacts, hit, err := r.artifacts(ctx, g, req, logger)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, result.GameID, req.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	result.Artifacts = artifacts
	result.CacheHit = hit
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}
	logger.Info("rendered scorecard",
		"formats", req.Formats,
		"bytes", result.Stats.Bytes,
		"cached", hit,
		"duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) fetch(ctx context.Context, req Request) (*game.Game, error) {
	if req.Game != nil {
		return req.Game, nil
	}
	if r.Repo == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no game repository configured")
	}
	return r.Repo.Get(ctx, req.Key)
}

// artifacts returns every requested format, from the cache when all of them
// are present and freshly rendered otherwise.
func (r *Runner) artifacts(ctx context.Context, g *game.Game, req Request, logger *log.Logger) (map[string][]byte, bool, error) {
	var doc bytes.Buffer
	if err := scio.WriteJSON(&doc, g); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash game")
	}
	gameHash := cache.Hash(doc.Bytes())
	renderer := r.rendererFor(req)
	settings := cache.Hash([]byte(renderer.Fingerprint()))
	keyFor := func(format string) string {
		return r.Keyer.ArtifactKey(req.gameID(), cache.ArtifactKeyOpts{
			GameHash: gameHash,
			Renderer: settings,
			Format:   format,
			Scale:    scaleKey(format, req.Scale),
		})
	}

	out := make(map[string][]byte, len(req.Formats))
	if !req.Refresh {
		for _, format := range req.Formats {
			data, ok, err := r.Cache.Get(ctx, keyFor(format))
			if err != nil {
				logger.Warn("cache read failed", "format", format, "err", err)
			}
			if !ok {
				break
			}
			out[format] = data
		}
		if len(out) == len(req.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return out, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	svg := renderer.Assemble(g)
	for _, format := range req.Formats {
		data, err := render.Convert(ctx, svg, format, req.Scale)
		if err != nil {
			return nil, false, err
		}
		out[format] = data
		if err := r.Cache.Set(ctx, keyFor(format), data, cache.ArtifactTTL); err != nil {
			logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return out, false, nil
}

func (r *Runner) rendererFor(req Request) *scorecard.Renderer {
	var opts []scorecard.Option
	if req.InlineStats {
		opts = append(opts, scorecard.WithInlineStats())
	}
	if req.InningTotals {
		opts = append(opts, scorecard.WithInningTotals())
	}
	if len(opts) == 0 {
		return r.Renderer
	}
	return r.Renderer.With(opts...)
}

// scaleKey keeps the scale out of non-PNG cache keys.
func scaleKey(format string, scale float64) float64 {
	if format != FormatPNG {
		return 0
	}
	return scale
}

// Close releases the repository connection and the cache.
func (r *Runner) Close() error {
	var errs []error
	if r.Repo != nil {
		errs = append(errs, repository.Close(context.Background(), r.Repo))
	}
	if r.Cache != nil {
		errs = append(errs, r.Cache.Close())
	}
	return stderrors.Join(errs...)
}
