// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

const testPlaceholder = "https://via.placeholder.com/500x750?text=No+Image"

func intPtr(v int) *int { return &v }

func testRecommendConfig() config.RecommendConfig {
	return config.RecommendConfig{DefaultK: 5, MinK: 1, MaxK: 10, GridColumns: 5}
}

func testResolver() metadata.Resolver {
	return metadata.Resolver{
		ImageBaseURL:     "https://image.tmdb.org/t/p/w500",
		PlaceholderImage: testPlaceholder,
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	movies := []catalog.Movie{
		{ID: 1, Title: "A", Genres: []string{"Action"}, ReleaseYear: intPtr(1999)},
		{ID: 2, Title: "B", Genres: []string{"Drama"}, ReleaseYear: intPtr(2004)},
		{ID: 3, Title: "C", Genres: []string{"Action", "Comedy"}},
		{ID: 4, Title: "D", ReleaseYear: intPtr(2010)},
	}
	matrix := [][]float64{
		{1.0, 0.9, 0.2, 0.5},
		{0.9, 1.0, 0.3, 0.1},
		{0.2, 0.3, 1.0, 0.4},
		{0.5, 0.1, 0.4, 1.0},
	}
	c, err := catalog.New(movies, matrix)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

// setupTestHandler builds a handler over the A/B/C/D catalog with fetcher as
// the metadata source (nil for offline).
func setupTestHandler(t *testing.T, fetcher metadata.Fetcher) *Handler {
	t.Helper()
	enricher := metadata.NewEnricher(fetcher, testResolver(), logging.NewTestLogger(&bytes.Buffer{}))
	h, err := NewHandler(testCatalog(t), enricher, testRecommendConfig())
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func setupTestRouter(t *testing.T, fetcher metadata.Fetcher) http.Handler {
	t.Helper()
	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"https://ui.example"},
		CORSAllowedMethods: []string{"GET", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type"},
		RateLimitRequests:  1000,
		RateLimitWindow:    time.Minute,
	})
	return NewRouter(setupTestHandler(t, fetcher), mw).SetupChi()
}

// envelope mirrors APIResponse with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v (body %s)", target, err, w.Body.String())
		}
	}
	return w, env
}

// fixedFetcher serves canned metadata by id.
type fixedFetcher map[int]*metadata.MovieResponse

func (f fixedFetcher) FetchMovie(_ context.Context, id int) (*metadata.MovieResponse, error) {
	if resp, ok := f[id]; ok {
		return resp, nil
	}
	return nil, &metadata.StatusError{StatusCode: http.StatusNotFound}
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string { return &s }

// skewedSource is a recommend.Source whose matrix is shorter than its table.
type skewedSource struct{}

func (skewedSource) Len() int { return 2 }
func (skewedSource) Movie(i int) (catalog.Movie, bool) {
	if i < 0 || i > 1 {
		return catalog.Movie{}, false
	}
	return catalog.Movie{ID: i + 1, Title: []string{"A", "B"}[i]}, true
}
func (skewedSource) IndexOf(title string) (int, bool) {
	switch title {
	case "A":
		return 0, true
	case "B":
		return 1, true
	}
	return -1, false
}
func (skewedSource) RowCount() int { return 1 }
func (skewedSource) Row(i int) ([]float64, bool) {
	if i != 0 {
		return nil, false
	}
	return []float64{1, 0.5}, true
}

var _ recommend.Source = skewedSource{}
