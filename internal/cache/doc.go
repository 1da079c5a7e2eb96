// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package cache provides the keyed caches used for movie metadata.
//
// Memory is a session-scoped map guarded by a mutex: entries are never evicted
// or expired, so a movie's metadata is fetched at most once per process as
// long as the first fetch succeeds. Badger (a local directory) or Redis (a
// server shared between replicas) layers a persistent store beneath it so
// successful fetches survive restarts.
package cache
