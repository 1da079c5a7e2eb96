// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/present"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness probes
//   - handlers_catalog.go: movie listing, genres and years
//   - handlers_recommend.go: recommendations and movie details
//   - handlers_ui.go: the HTML page
//
// The catalog is immutable and the enricher guards its own cache, so a
// Handler is safe for concurrent requests without locking.
type Handler struct {
	catalog   *catalog.Catalog
	lookup    *recommend.Lookup
	enricher  *metadata.Enricher
	renderer  *present.Renderer
	config    config.RecommendConfig
	startTime time.Time
}

// NewHandler creates a handler over a loaded catalog.
//
//	handler, err := api.NewHandler(cat, enricher, cfg.Recommend)
//	router := api.NewRouter(handler, api.NewChiMiddleware(mwConfig))
func NewHandler(cat *catalog.Catalog, enricher *metadata.Enricher, cfg config.RecommendConfig) (*Handler, error) {
	renderer, err := present.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Handler{
		catalog:   cat,
		lookup:    recommend.NewLookup(cat, logging.Logger()),
		enricher:  enricher,
		renderer:  renderer,
		config:    cfg,
		startTime: time.Now(),
	}, nil
}
