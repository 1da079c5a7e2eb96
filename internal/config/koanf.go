// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Metadata defaults match the public TMDB v3 API.
const (
	DefaultMetadataBaseURL  = "https://api.themoviedb.org/3"
	DefaultImageBaseURL     = "https://image.tmdb.org/t/p/w500"
	DefaultPlaceholderImage = "https://via.placeholder.com/500x750?text=No+Image"
)

// defaultConfig returns a Config with all default values.
// Defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			MoviesPath:     "data/movies.csv",
			SimilarityPath: "data/similarity.json",
		},
		Metadata: MetadataConfig{
			Enabled:           true,
			BaseURL:           DefaultMetadataBaseURL,
			APIKey:            "",
			Language:          "en-US",
			ImageBaseURL:      DefaultImageBaseURL,
			PlaceholderImage:  DefaultPlaceholderImage,
			Timeout:           10 * time.Second,
			RequestsPerSecond: 20,
			Burst:             5,
			CachePath:         "",
			CacheGCInterval:   10 * time.Minute,
		},
		Recommend: RecommendConfig{
			DefaultK:    5,
			MinK:        1,
			MaxK:        10,
			GridColumns: 5,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8501,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Optional YAML config file
//  3. Environment variables
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found, or "" when none exists.
// CONFIG_PATH is checked before the default paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Catalog
	"movies_path":     "catalog.movies_path",
	"similarity_path": "catalog.similarity_path",

	// Metadata
	"tmdb_enabled":               "metadata.enabled",
	"tmdb_base_url":              "metadata.base_url",
	"tmdb_api_key":               "metadata.api_key",
	"tmdb_language":              "metadata.language",
	"tmdb_image_base_url":        "metadata.image_base_url",
	"tmdb_placeholder_image":     "metadata.placeholder_image",
	"tmdb_timeout":               "metadata.timeout",
	"tmdb_requests_per_second":   "metadata.requests_per_second",
	"tmdb_burst":                 "metadata.burst",
	"metadata_cache_path":        "metadata.cache_path",
	"metadata_cache_gc_interval": "metadata.cache_gc_interval",
	"redis_addr":                 "metadata.redis_addr",
	"redis_password":             "metadata.redis_password",
	"redis_db":                   "metadata.redis_db",

	// Recommend
	"recommend_default_k":    "recommend.default_k",
	"recommend_min_k":        "recommend.min_k",
	"recommend_max_k":        "recommend.max_k",
	"recommend_grid_columns": "recommend.grid_columns",

	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - MOVIES_PATH -> catalog.movies_path
//   - TMDB_API_KEY -> metadata.api_key
//   - HTTP_PORT -> server.port
//
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
