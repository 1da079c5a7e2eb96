// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateMetadata(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

// validateCatalog requires both artifact paths. Existence is checked by the loader.
func (c *Config) validateCatalog() error {
	if c.Catalog.MoviesPath == "" {
		return errors.New("MOVIES_PATH is required")
	}
	if c.Catalog.SimilarityPath == "" {
		return errors.New("SIMILARITY_PATH is required")
	}
	return nil
}

// validateMetadata validates the metadata client settings (only if enabled).
func (c *Config) validateMetadata() error {
	m := c.Metadata
	if m.CachePath != "" && m.RedisAddr != "" {
		return errors.New("set at most one of METADATA_CACHE_PATH and REDIS_ADDR")
	}
	if m.RedisDB < 0 {
		return errors.New("REDIS_DB must not be negative")
	}
	if m.Persistent() && m.CacheGCInterval <= 0 {
		return errors.New("METADATA_CACHE_GC_INTERVAL must be positive")
	}
	if !m.Enabled {
		return nil
	}
	if err := validateHTTPURL(m.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(m.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if _, err := url.Parse(m.PlaceholderImage); err != nil || m.PlaceholderImage == "" {
		return errors.New("TMDB_PLACEHOLDER_IMAGE must be a valid URL")
	}
	if m.Timeout <= 0 {
		return errors.New("TMDB_TIMEOUT must be positive")
	}
	if m.RequestsPerSecond <= 0 {
		return errors.New("TMDB_REQUESTS_PER_SECOND must be positive")
	}
	if m.Burst < 1 {
		return errors.New("TMDB_BURST must be at least 1")
	}
	return nil
}

// validateRecommend checks the result count bounds and grid width.
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MinK < 1 {
		return errors.New("RECOMMEND_MIN_K must be at least 1")
	}
	if r.MaxK < r.MinK {
		return fmt.Errorf("RECOMMEND_MAX_K (%d) must not be less than RECOMMEND_MIN_K (%d)", r.MaxK, r.MinK)
	}
	if r.DefaultK < r.MinK || r.DefaultK > r.MaxK {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be between %d and %d", r.MinK, r.MaxK)
	}
	if r.GridColumns < 1 {
		return errors.New("RECOMMEND_GRID_COLUMNS must be at least 1")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return errors.New("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return errors.New("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
