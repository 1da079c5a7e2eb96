// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// maxErrorBodySize limits how much of an error response is kept for diagnostics.
const maxErrorBodySize = 4 * 1024

// ErrDecode is returned when a 200 response body is not a valid movie payload.
var ErrDecode = errors.New("malformed metadata response")

// StatusError reports a non-200 response from the metadata API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("metadata API returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Fetcher retrieves the raw payload for one movie id.
type Fetcher interface {
	FetchMovie(ctx context.Context, movieID int) (*MovieResponse, error)
}

// Client calls a TMDB-compatible movie endpoint.
//
// Thread Safety: safe for concurrent use.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a client from metadata configuration. A zero
// RequestsPerSecond disables pacing.
func NewClient(cfg *config.MetadataConfig) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// movieURL builds {base}/movie/{id}?api_key=..&language=..
func (c *Client) movieURL(movieID int) string {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	return fmt.Sprintf("%s/movie/%s?%s", c.baseURL, strconv.Itoa(movieID), params.Encode())
}

// FetchMovie performs a single GET for movieID. Every outcome is recorded in
// the metadata fetch metrics.
func (c *Client) FetchMovie(ctx context.Context, movieID int) (*MovieResponse, error) {
	start := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordMetadataFetch(metrics.FetchTransport, time.Since(start))
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.movieURL(movieID), http.NoBody)
	if err != nil {
		metrics.RecordMetadataFetch(metrics.FetchTransport, time.Since(start))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordMetadataFetch(metrics.FetchTransport, time.Since(start))
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)) //nolint:errcheck // best-effort diagnostics
		metrics.RecordMetadataFetch(metrics.FetchHTTPError, time.Since(start))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var movie MovieResponse
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		metrics.RecordMetadataFetch(metrics.FetchDecodeError, time.Since(start))
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	metrics.RecordMetadataFetch(metrics.FetchSuccess, time.Since(start))
	return &movie, nil
}
