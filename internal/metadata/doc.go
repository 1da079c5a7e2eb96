// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metadata enriches recommended movies with display metadata from a
TMDB-compatible API.

# Components

  - Client: one GET per movie id against {base}/movie/{id}, paced by a token
    bucket limiter. There are no retries.
  - CircuitBreakerClient: wraps Client with sony/gobreaker so a failing
    upstream is skipped quickly instead of timing out on every card.
  - Enricher: resolves ids to Details sequentially, memoizing successful
    fetches in an in-process cache and, when configured, a Badger or Redis
    PersistentStore that survives restarts. Failures are never cached.

# Degradation

Enrichment never fails a request. A transport error, non-200 status,
malformed body or open breaker produces placeholder Details: the placeholder
poster, "No overview available", and N/A popularity and rating. When no API
key is configured the Enricher is built without a fetcher and every card uses
placeholders.

# Sorting

Popularity and rating are optional. SortPopularity and SortRating return 0
for missing values so the presentation layer can order cards without special
cases.
*/
package metadata
