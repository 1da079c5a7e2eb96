// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Metadata  MetadataConfig  `koanf:"metadata"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig locates the two artifacts produced offline: the movie table
// and the similarity matrix aligned with it by row index.
//
// Environment Variables:
//   - MOVIES_PATH: CSV, Parquet or JSON movie table
//   - SIMILARITY_PATH: JSON array-of-arrays similarity matrix
type CatalogConfig struct {
	MoviesPath     string `koanf:"movies_path"`
	SimilarityPath string `koanf:"similarity_path"`
}

// MetadataConfig configures the TMDB-compatible metadata client.
//
// With no API key the enricher runs without network access and every card
// shows placeholder values.
type MetadataConfig struct {
	Enabled           bool          `koanf:"enabled"`
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	Language          string        `koanf:"language"`
	ImageBaseURL      string        `koanf:"image_base_url"`
	PlaceholderImage  string        `koanf:"placeholder_image"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	CachePath         string        `koanf:"cache_path"` // Optional Badger directory; empty keeps the cache in memory only
	CacheGCInterval   time.Duration `koanf:"cache_gc_interval"`
	RedisAddr         string        `koanf:"redis_addr"` // Optional shared Redis cache; mutually exclusive with cache_path
	RedisPassword     string        `koanf:"redis_password"`
	RedisDB           int           `koanf:"redis_db"`
}

// Persistent reports whether a persistent metadata cache is configured.
func (m MetadataConfig) Persistent() bool {
	return m.CachePath != "" || m.RedisAddr != ""
}

// Active reports whether outbound metadata requests should be made.
func (m MetadataConfig) Active() bool {
	return m.Enabled && m.APIKey != ""
}

// RecommendConfig holds result count bounds and grid layout.
type RecommendConfig struct {
	DefaultK    int `koanf:"default_k"`
	MinK        int `koanf:"min_k"`
	MaxK        int `koanf:"max_k"`
	GridColumns int `koanf:"grid_columns"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
