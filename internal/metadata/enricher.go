// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/config"
)

const (
	memoryCacheName = "memory"
	storePrefix     = "movie:"

	// gcDiscardRatio is the share of stale data that makes a value log file
	// worth rewriting.
	gcDiscardRatio = 0.5
)

// PersistentStore is a JSON key/value cache that outlives the process.
// cache.Badger and cache.Redis satisfy it.
type PersistentStore interface {
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	Len(ctx context.Context) (int, error)
	Close() error
}

// garbageCollector is implemented by stores that reclaim disk space.
type garbageCollector interface {
	RunGC(discardRatio float64) (int, error)
}

// Enricher resolves movie ids to display Details.
//
// Successful fetches are memoized for the lifetime of the process and never
// evicted. Failed fetches return placeholders and are retried on the next
// request for the same id.
type Enricher struct {
	fetcher    Fetcher
	resolver   Resolver
	memory     *cache.Memory[int, Details]
	persistent PersistentStore
	logger     zerolog.Logger
}

// EnricherOption configures an Enricher.
type EnricherOption func(*Enricher)

// WithPersistentCache layers a persistent store beneath the memory cache.
// Raw payloads are stored so a changed image base URL takes effect on
// restart.
func WithPersistentCache(store PersistentStore) EnricherOption {
	return func(e *Enricher) {
		e.persistent = store
	}
}

// NewEnricher creates an Enricher. A nil fetcher yields placeholders for
// every id without any network access.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEnricher(fetcher Fetcher, resolver Resolver, logger zerolog.Logger, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		fetcher:  fetcher,
		resolver: resolver,
		memory:   cache.NewMemory[int, Details](memoryCacheName),
		logger:   logger.With().Str("component", "metadata").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromConfig builds the production Enricher: a paced client behind a
// circuit breaker, plus a Badger cache when cache_path is set or a Redis
// cache when redis_addr is set. With no API key or enabled=false the
// Enricher runs offline.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFromConfig(ctx context.Context, cfg *config.MetadataConfig, logger zerolog.Logger) (*Enricher, error) {
	resolver := Resolver{
		ImageBaseURL:     cfg.ImageBaseURL,
		PlaceholderImage: cfg.PlaceholderImage,
	}

	var fetcher Fetcher
	if cfg.Active() {
		fetcher = NewCircuitBreakerClient(NewClient(cfg), DefaultBreakerSettings())
	}

	var opts []EnricherOption
	switch {
	case cfg.CachePath != "":
		store, err := cache.OpenBadger(cfg.CachePath, storePrefix)
		if err != nil {
			return nil, fmt.Errorf("metadata cache: %w", err)
		}
		opts = append(opts, WithPersistentCache(store))
	case cfg.RedisAddr != "":
		store, err := cache.OpenRedis(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, storePrefix)
		if err != nil {
			return nil, fmt.Errorf("metadata cache: %w", err)
		}
		opts = append(opts, WithPersistentCache(store))
	}

	return NewEnricher(fetcher, resolver, logger, opts...), nil
}

// Online reports whether the Enricher makes outbound requests.
func (e *Enricher) Online() bool {
	return e.fetcher != nil
}

// Details returns display values for one movie.
func (e *Enricher) Details(ctx context.Context, movieID int) Details {
	if d, ok := e.memory.Get(movieID); ok {
		return d
	}

	if resp, ok := e.loadPersistent(ctx, movieID); ok {
		d := e.resolver.Resolve(movieID, resp)
		e.memory.Set(movieID, d)
		return d
	}

	if e.fetcher == nil {
		return e.resolver.Placeholder(movieID)
	}

	resp, err := e.fetcher.FetchMovie(ctx, movieID)
	if err != nil {
		e.logger.Warn().Err(err).Int("movie_id", movieID).Msg("Metadata fetch failed, using placeholders")
		return e.resolver.Placeholder(movieID)
	}

	d := e.resolver.Resolve(movieID, resp)
	e.memory.Set(movieID, d)
	e.storePersistent(ctx, movieID, resp)
	return d
}

// Enrich resolves ids in order, one fetch at a time. The result always has
// one entry per id.
func (e *Enricher) Enrich(ctx context.Context, ids []int) []Details {
	out := make([]Details, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.Details(ctx, id))
	}
	return out
}

// CacheStats returns the memory cache counters.
func (e *Enricher) CacheStats() cache.Stats {
	return e.memory.GetStats()
}

// Maintain reports the persistent cache size and, for stores that support
// it, reclaims disk space. It is a no-op without a persistent cache.
func (e *Enricher) Maintain(ctx context.Context) error {
	if e.persistent == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := e.persistent.Len(ctx)
	if err != nil {
		return fmt.Errorf("persistent cache size: %w", err)
	}
	rewrites := 0
	if gc, ok := e.persistent.(garbageCollector); ok {
		rewrites, err = gc.RunGC(gcDiscardRatio)
		if err != nil {
			return fmt.Errorf("persistent cache gc: %w", err)
		}
	}

	stats := e.CacheStats()
	e.logger.Debug().
		Int("entries", entries).
		Int64("memory_entries", stats.TotalKeys).
		Float64("memory_hit_rate", stats.HitRate).
		Int("gc_rewrites", rewrites).
		Msg("Metadata cache maintenance complete")
	return nil
}

// Close releases the persistent cache, if any.
func (e *Enricher) Close() error {
	if e.persistent == nil {
		return nil
	}
	return e.persistent.Close()
}

func (e *Enricher) loadPersistent(ctx context.Context, movieID int) (*MovieResponse, bool) {
	if e.persistent == nil {
		return nil, false
	}
	var resp MovieResponse
	found, err := e.persistent.GetJSON(ctx, strconv.Itoa(movieID), &resp)
	if err != nil {
		e.logger.Warn().Err(err).Int("movie_id", movieID).Msg("Persistent metadata cache read failed")
		return nil, false
	}
	return &resp, found
}

func (e *Enricher) storePersistent(ctx context.Context, movieID int, resp *MovieResponse) {
	if e.persistent == nil {
		return
	}
	if err := e.persistent.SetJSON(ctx, strconv.Itoa(movieID), resp); err != nil {
		e.logger.Warn().Err(err).Int("movie_id", movieID).Msg("Persistent metadata cache write failed")
	}
}
