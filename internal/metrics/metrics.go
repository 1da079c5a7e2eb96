// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeNotFound     = "not_found"
	OutcomeDataMismatch = "data_mismatch"
)

// Metadata fetch outcomes.
const (
	FetchSuccess     = "success"
	FetchHTTPError   = "http_error"
	FetchDecodeError = "decode_error"
	FetchRejected    = "rejected"
	FetchTransport   = "transport_error"
)

var (
	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_load_duration_seconds",
			Help: "Time taken to load and validate the catalog artifacts",
		},
	)

	// Lookup Metrics
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_lookups_total",
			Help: "Total number of recommendation lookups by outcome",
		},
		[]string{"outcome"}, // "ok", "not_found", "data_mismatch"
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_lookup_duration_seconds",
			Help:    "Duration of a single top-K lookup",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	LookupSkippedIndices = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_skipped_indices_total",
			Help: "Candidate indices skipped because they fall outside the movie table",
		},
	)

	// Metadata Metrics
	MetadataFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_fetches_total",
			Help: "Total number of outbound metadata fetches by outcome",
		},
		[]string{"outcome"},
	)

	MetadataFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metadata_fetch_duration_seconds",
			Help:    "Duration of outbound metadata fetches",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"}, // "memory", "badger"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogLoad records the size and load time of the catalog.
func RecordCatalogLoad(movies int, duration time.Duration) {
	CatalogMovies.Set(float64(movies))
	CatalogLoadDuration.Set(duration.Seconds())
}

// RecordLookup records a lookup outcome and its duration.
func RecordLookup(outcome string, skipped int, duration time.Duration) {
	LookupsTotal.WithLabelValues(outcome).Inc()
	LookupDuration.Observe(duration.Seconds())
	if skipped > 0 {
		LookupSkippedIndices.Add(float64(skipped))
	}
}

// RecordMetadataFetch records an outbound metadata fetch.
func RecordMetadataFetch(outcome string, duration time.Duration) {
	MetadataFetchesTotal.WithLabelValues(outcome).Inc()
	MetadataFetchDuration.Observe(duration.Seconds())
}

// RecordCacheLookup records a hit or miss on the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}
