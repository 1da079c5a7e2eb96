// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// badgerCacheName labels the persistent cache in metrics.
const badgerCacheName = "badger"

// Badger is a persistent key/value cache backed by BadgerDB. Values are stored
// as JSON. Like Memory it never expires or evicts entries.
type Badger struct {
	db     *badger.DB
	prefix string
}

// OpenBadger opens (or creates) a Badger database in dir. Keys are namespaced
// with prefix so several caches can share one directory.
func OpenBadger(dir, prefix string) (*Badger, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache at %s: %w", dir, err)
	}
	return &Badger{db: db, prefix: prefix}, nil
}

// NewBadger wraps an already open database.
func NewBadger(db *badger.DB, prefix string) *Badger {
	return &Badger{db: db, prefix: prefix}
}

func (b *Badger) key(key string) []byte {
	return []byte(b.prefix + key)
}

// GetJSON decodes the value stored under key into v. It reports false with a
// nil error when the key is absent.
func (b *Badger) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		metrics.RecordCacheLookup(badgerCacheName, false)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	metrics.RecordCacheLookup(badgerCacheName, true)
	return true, nil
}

// SetJSON stores v under key.
func (b *Badger) SetJSON(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key(key), data)
	})
}

// Len counts the keys under this cache's prefix.
func (b *Badger) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count := 0
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(b.prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count keys: %w", err)
	}
	metrics.CacheSize.WithLabelValues(badgerCacheName).Set(float64(count))
	return count, nil
}

// RunGC rewrites value log files until Badger reports nothing left to
// reclaim. It returns the number of files rewritten.
func (b *Badger) RunGC(discardRatio float64) (int, error) {
	rewrites := 0
	for {
		err := b.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return rewrites, nil
		}
		if err != nil {
			return rewrites, fmt.Errorf("run GC: %w", err)
		}
		rewrites++
	}
}

// Close closes the underlying database.
func (b *Badger) Close() error {
	return b.db.Close()
}
