package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"evstat-api/internal/metrics"

	"github.com/Velocidex/ttlcache/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Query identifiers used as cache keys.
const (
	KeyRegistrations = "registrations"
	KeyStationTables = "station_tables"
)

// loadTimeout bounds a shared load once it no longer follows any caller's context.
const loadTimeout = 2 * time.Minute

// generation identifies one validity period of a key. RefreshAll bumps epoch, Refresh bumps the key's own counter.
type generation struct {
	epoch uint64
	key   uint64
}

// TableCache memoizes whole-table loads for the life of the process.
// Entries never expire; they are dropped only by Refresh or RefreshAll.
type TableCache struct {
	store   *ttlcache.Cache
	group   singleflight.Group
	enabled bool

	mu    sync.Mutex
	epoch uint64
	gens  map[string]uint64
}

// New creates a TableCache. A disabled cache passes every load through to the database.
func New(enabled bool) *TableCache {
	return &TableCache{
		store:   ttlcache.NewCache(),
		enabled: enabled,
		gens:    map[string]uint64{},
	}
}

func (c *TableCache) generation(key string) generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.gens[key]; !ok {
		c.gens[key] = 0
	}
	return generation{epoch: c.epoch, key: c.gens[key]}
}

// storeIfCurrent keeps table only when no refresh happened since gen was taken.
func (c *TableCache) storeIfCurrent(key string, gen generation, table any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != (generation{epoch: c.epoch, key: c.gens[key]}) {
		log.Debug().Str("key", key).Msg("cache: discarding load started before refresh")
		return
	}
	if err := c.store.Set(key, table); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: failed to store table")
	}
}

// Fetch returns the table stored under key, loading it with fetch on a miss.
// Concurrent misses for one key share a single load, which is detached from the
// caller that started it: a cancelled caller returns early without failing the others.
// Failed loads are not stored.
func Fetch[T any](ctx context.Context, c *TableCache, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if c == nil || !c.enabled {
		return fetch(ctx)
	}

	if v, err := c.store.Get(key); err == nil {
		if table, ok := v.(T); ok {
			metrics.CacheHits.WithLabelValues(key).Inc()
			return table, nil
		}
	}
	metrics.CacheMisses.WithLabelValues(key).Inc()

	ch := c.group.DoChan(key, func() (interface{}, error) {
		gen := c.generation(key)
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		table, err := fetch(loadCtx)
		if err != nil {
			metrics.LoadErrors.WithLabelValues(key).Inc()
			return nil, err
		}
		c.storeIfCurrent(key, gen, table)
		return table, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}

	table, ok := res.Val.(T)
	if !ok {
		return zero, fmt.Errorf("cache: entry %q has type %T", key, res.Val)
	}
	return table, nil
}

// Refresh drops the entry for key so the next Fetch reloads it.
// A load already in flight for key is not stored.
func (c *TableCache) Refresh(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[key]++
	c.group.Forget(key)
	if err := c.store.Remove(key); err != nil && !errors.Is(err, ttlcache.ErrNotFound) {
		return fmt.Errorf("cache: refresh %q: %w", key, err)
	}
	return nil
}

// RefreshAll drops every entry.
func (c *TableCache) RefreshAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	for key := range c.gens {
		c.group.Forget(key)
	}
	if err := c.store.Purge(); err != nil {
		return fmt.Errorf("cache: purge: %w", err)
	}
	return nil
}

// Close stops the cache's expiry goroutine.
func (c *TableCache) Close() error {
	return c.store.Close()
}
