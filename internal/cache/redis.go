// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

const (
	redisCacheName = "redis"

	redisPingTimeout = 5 * time.Second
	redisScanCount   = 500
)

// RedisOptions selects the Redis server backing a Redis cache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// Redis is a shared key/value cache backed by a Redis server. Values are
// stored as JSON without a TTL, so entries live until removed externally.
type Redis struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to Redis and verifies the connection with a ping.
func OpenRedis(ctx context.Context, opts RedisOptions, prefix string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
	}
	return NewRedis(client, prefix), nil
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

// GetJSON decodes the value stored under key into v. It reports false with a
// nil error when the key is absent.
func (r *Redis) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(redisCacheName, false)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	metrics.RecordCacheLookup(redisCacheName, true)
	return true, nil
}

// SetJSON stores v under key.
func (r *Redis) SetJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.client.Set(ctx, r.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Len counts the keys under this cache's prefix with SCAN.
func (r *Redis) Len(ctx context.Context) (int, error) {
	count := 0
	iter := r.client.Scan(ctx, 0, r.prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("count keys: %w", err)
	}
	metrics.CacheSize.WithLabelValues(redisCacheName).Set(float64(count))
	return count, nil
}

// Close closes the client connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
