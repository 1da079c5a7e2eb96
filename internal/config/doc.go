// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package config loads and validates Reelmatch configuration.
//
// Sources are layered with Koanf v2: built-in defaults, then an optional YAML
// file (CONFIG_PATH, ./config.yaml or /etc/reelmatch/config.yaml), then
// environment variables. Later layers win.
//
// Example config.yaml:
//
//	catalog:
//	  movies_path: /data/movies.parquet
//	  similarity_path: /data/similarity.json
//	metadata:
//	  api_key: "..."
//	  cache_path: /data/metadata-cache
//	recommend:
//	  default_k: 5
//	server:
//	  port: 8501
//
// Commonly used environment variables:
//
//	MOVIES_PATH, SIMILARITY_PATH   catalog artifacts (required)
//	TMDB_API_KEY                   metadata API key (optional)
//	METADATA_CACHE_PATH            persistent metadata cache directory
//	METADATA_CACHE_GC_INTERVAL     persistent cache housekeeping interval (default 10m)
//	REDIS_ADDR                     shared Redis metadata cache (instead of METADATA_CACHE_PATH)
//	HTTP_PORT, HTTP_HOST           listen address
//	LOG_LEVEL, LOG_FORMAT          logging
package config
