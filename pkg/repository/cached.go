package repository

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/scorecard/pkg/cache"
	"github.com/matzehuels/scorecard/pkg/game"
	scio "github.com/matzehuels/scorecard/pkg/io"
	"github.com/matzehuels/scorecard/pkg/observability"
)

// CachedRepository serves games from a cache and falls back to an inner
// repository on a miss. Cache failures are treated as misses.
type CachedRepository struct {
	inner GameRepository
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// NewCachedRepository wraps inner. A nil keyer uses [cache.DefaultKeyer] and
// a zero ttl uses [cache.GameTTL].
func NewCachedRepository(inner GameRepository, c cache.Cache, keyer cache.Keyer, ttl time.Duration) *CachedRepository {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if ttl == 0 {
		ttl = cache.GameTTL
	}
	return &CachedRepository{inner: inner, cache: c, keyer: keyer, ttl: ttl}
}

// Get returns the cached game for key, fetching and caching it on a miss.
func (r *CachedRepository) Get(ctx context.Context, key Key) (*game.Game, error) {
	ck := r.keyer.GameKey(key.ID())
	if data, ok, err := r.cache.Get(ctx, ck); err == nil && ok {
		if g, err := scio.ReadJSON(bytes.NewReader(data)); err == nil {
			observability.Cache().OnCacheHit(ctx, "game")
			return g, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "game")

	g, err := r.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := scio.WriteJSON(&buf, g); err == nil {
		if err := r.cache.Set(ctx, ck, buf.Bytes(), r.ttl); err == nil {
			observability.Cache().OnCacheSet(ctx, "game", buf.Len())
		}
	}
	return g, nil
}

// List is not cached; schedules change during the day.
func (r *CachedRepository) List(ctx context.Context, date string) ([]Key, error) {
	return r.inner.List(ctx, date)
}

// Invalidate drops the cached copy of key.
func (r *CachedRepository) Invalidate(ctx context.Context, key Key) error {
	return r.cache.Delete(ctx, r.keyer.GameKey(key.ID()))
}

// Close closes the wrapped repository. The cache is owned by the caller.
func (r *CachedRepository) Close(ctx context.Context) error {
	return Close(ctx, r.inner)
}

var (
	_ GameRepository = (*FileRepository)(nil)
	_ GameRepository = (*MongoRepository)(nil)
	_ GameRepository = (*CachedRepository)(nil)
)
