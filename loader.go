package podcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/pod-protocol/podcache/lru"
)

// ErrKeyRequired is returned when a Loader is asked for an empty key.
var ErrKeyRequired = errors.New("podcache: key is required")

// FetchFunc computes the true value for a key on a cache miss,
// typically by hitting the RPC layer.
type FetchFunc[V any] func(ctx context.Context, key string) (V, error)

// Loader composes a cache with a fetcher into a read-through lookup.
// The caches themselves never call producers; the Loader is the
// caller-side glue that does, with two guarantees the bare cache does
// not give:
//
//   - access to the wrapped cache is serialized behind a mutex, so a
//     Loader is safe to share across goroutines;
//   - concurrent misses on the same key trigger exactly one fetch,
//     with all waiters sharing its result.
type Loader[V any] struct {
	mu       sync.Mutex
	cache    *lru.Cache[string, V]
	fetch    FetchFunc[V]
	group    singleflight.Group
	log      logrus.FieldLogger
	disabled bool

	stats loaderStats
}

type loaderStats struct {
	hits       atomic.Uint64
	loads      atomic.Uint64
	loadErrors atomic.Uint64
	loadNanos  atomic.Int64
}

// LoaderStats describes a Loader's traffic since construction.
type LoaderStats struct {
	Hits        uint64 // served from cache
	Loads       uint64 // fetches that reached the producer
	LoadErrors  uint64
	AvgLoadTime time.Duration // mean producer latency, 0 before any load
}

// LoaderOption configures a Loader.
type LoaderOption[V any] func(*Loader[V])

// WithLogger routes the Loader's diagnostics through log.
func WithLogger[V any](log logrus.FieldLogger) LoaderOption[V] {
	return func(l *Loader[V]) {
		if log != nil {
			l.log = log
		}
	}
}

// WithLoaderConfig honors cfg.Enabled: a disabled config makes every
// Get call straight through to the fetcher.
func WithLoaderConfig[V any](cfg Config) LoaderOption[V] {
	return func(l *Loader[V]) {
		l.disabled = !cfg.Enabled
	}
}

// NewLoader builds a read-through Loader over cache and fetch. A nil
// fetcher is a programmer error and panics; a nil cache is allowed
// only together with a disabled Config.
func NewLoader[V any](cache *lru.Cache[string, V], fetch FetchFunc[V], opts ...LoaderOption[V]) *Loader[V] {
	if fetch == nil {
		panic("podcache: nil FetchFunc")
	}

	l := &Loader[V]{
		cache: cache,
		fetch: fetch,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cache == nil && !l.disabled {
		panic("podcache: nil cache on an enabled Loader")
	}
	return l
}

// Get returns the value for key, from cache when fresh, otherwise
// from the fetcher. A fetched value is stored before it is returned.
func (l *Loader[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	if key == "" {
		return zero, ErrKeyRequired
	}
	if l.disabled {
		return l.load(ctx, key)
	}

	l.mu.Lock()
	v, ok := l.cache.Get(key)
	l.mu.Unlock()
	if ok {
		l.stats.hits.Add(1)
		return v, nil
	}

	result, err, _ := l.group.Do(key, func() (interface{}, error) {
		v, err := l.load(ctx, key)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache.Set(key, v)
		l.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(V), nil
}

// Invalidate drops key from the cache so the next Get refetches.
func (l *Loader[V]) Invalidate(key string) {
	if l.disabled || key == "" {
		return
	}
	l.mu.Lock()
	l.cache.Delete(key)
	l.mu.Unlock()
}

// Stats returns the Loader's traffic counters.
func (l *Loader[V]) Stats() LoaderStats {
	s := LoaderStats{
		Hits:       l.stats.hits.Load(),
		Loads:      l.stats.loads.Load(),
		LoadErrors: l.stats.loadErrors.Load(),
	}
	if s.Loads > 0 {
		s.AvgLoadTime = time.Duration(l.stats.loadNanos.Load() / int64(s.Loads))
	}
	return s
}

// CacheStats returns the wrapped cache's counters, zero when caching
// is disabled.
func (l *Loader[V]) CacheStats() lru.Stats {
	if l.disabled {
		return lru.Stats{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Stats()
}

func (l *Loader[V]) load(ctx context.Context, key string) (V, error) {
	start := time.Now()
	v, err := l.fetch(ctx, key)
	l.stats.loads.Add(1)
	l.stats.loadNanos.Add(time.Since(start).Nanoseconds())

	if err != nil {
		l.stats.loadErrors.Add(1)
		l.log.WithField("key", key).WithError(err).Warn("fetch failed")
		var zero V
		return zero, fmt.Errorf("podcache: load %q: %w", key, err)
	}
	return v, nil
}
