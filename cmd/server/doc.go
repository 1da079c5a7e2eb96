// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch serves content-based movie recommendations from two precomputed
artifacts: a movie table and a square similarity matrix. A browser page and a
JSON API both look up the k most similar titles and decorate them with poster,
overview, popularity and rating from a TMDB-compatible metadata service.

# Application Architecture

	RootSupervisor ("reelmatch")
	├── CacheSupervisor ("cache-layer")
	│   └── CacheMaintenanceService (with METADATA_CACHE_PATH or REDIS_ADDR)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog with JSON or console output
 3. Catalog: movie table and similarity matrix, validated before serving
 4. Metadata: paced TMDB client behind a circuit breaker, memory and
    optional Badger or Redis cache
 5. HTTP: chi router with the page, the JSON API, health and /metrics
 6. Supervisor Tree: suture v4

A catalog that fails to load stops the process before the listener opens.
Missing metadata credentials do not: cards fall back to placeholders.

# Example Usage

	export MOVIES_PATH=data/movies.csv
	export SIMILARITY_PATH=data/similarity.json
	export TMDB_API_KEY=your-key
	./reelmatch

Then open http://localhost:8501/ or query the API:

	curl 'http://localhost:8501/api/v1/recommendations?title=Avatar&k=5&sort=rating'

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT and the metadata cache
is closed last.
*/
package main
