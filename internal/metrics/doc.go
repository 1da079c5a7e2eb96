// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics for Reelmatch.

Collectors are registered with the default registry at package init through
promauto and exposed at /metrics:

	curl http://localhost:8501/metrics

# Available Metrics

Catalog:
  - catalog_movies: movies in the loaded catalog
  - catalog_load_duration_seconds: artifact load and validation time

Lookup:
  - recommend_lookups_total{outcome}: ok, not_found, data_mismatch
  - recommend_lookup_duration_seconds
  - recommend_skipped_indices_total: candidates outside the movie table

Metadata:
  - metadata_fetches_total{outcome}
  - metadata_fetch_duration_seconds
  - cache_hits_total{cache}, cache_misses_total{cache}, cache_entries{cache}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}
*/
package metrics
