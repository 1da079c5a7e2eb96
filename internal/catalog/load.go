// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// LoadConfig locates the two catalog artifacts.
type LoadConfig struct {
	MoviesPath     string
	SimilarityPath string
}

// Load reads and validates both artifacts and returns the Catalog. Any
// failure is returned with the offending path in the message; the caller is
// expected to stop before serving.
func Load(ctx context.Context, cfg LoadConfig) (*Catalog, error) {
	start := time.Now()

	for _, path := range []string{cfg.MoviesPath, cfg.SimilarityPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("catalog artifact %s: %w", path, err)
		}
	}

	movies, err := LoadMovies(ctx, cfg.MoviesPath)
	if err != nil {
		return nil, err
	}

	matrix, err := LoadMatrix(cfg.SimilarityPath)
	if err != nil {
		return nil, err
	}

	c, err := New(movies, matrix)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", cfg.MoviesPath, cfg.SimilarityPath, err)
	}

	elapsed := time.Since(start)
	metrics.RecordCatalogLoad(c.Len(), elapsed)

	minYear, maxYear, hasYears := c.YearBounds()
	event := logging.Info().
		Str("movies_path", cfg.MoviesPath).
		Str("similarity_path", cfg.SimilarityPath).
		Int("movies", c.Len()).
		Int("genres", len(c.Genres())).
		Dur("duration", elapsed)
	if hasYears {
		event = event.Int("year_min", minYear).Int("year_max", maxYear)
	}
	event.Msg("Catalog loaded")

	return c, nil
}
