// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Lookup binds a catalog to logging and metrics. It holds no mutable state
// and is safe for concurrent use.
type Lookup struct {
	source Source
	logger zerolog.Logger
}

// NewLookup creates a Lookup over source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLookup(source Source, logger zerolog.Logger) *Lookup {
	return &Lookup{
		source: source,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// Source returns the catalog the lookup reads from.
func (l *Lookup) Source() Source {
	return l.source
}

// Recommend runs Recommend against the bound catalog, logging skipped
// candidates and recording the outcome.
func (l *Lookup) Recommend(ctx context.Context, title string, k int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return emptyResult(title), err
	}

	start := time.Now()
	res, err := Recommend(l.source, title, k)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, ErrNotFound):
		metrics.RecordLookup(metrics.OutcomeNotFound, 0, elapsed)
		l.logger.Debug().Str("title", title).Msg("Title not found")
	case errors.Is(err, ErrDataMismatch):
		metrics.RecordLookup(metrics.OutcomeDataMismatch, 0, elapsed)
		l.logger.Error().Err(err).Str("title", title).Msg("Similarity row missing for resolved title")
	case err == nil:
		for _, idx := range res.Skipped {
			l.logger.Warn().
				Str("title", title).
				Int("index", idx).
				Int("catalog_size", l.source.Len()).
				Msg("Skipping recommendation outside catalog bounds")
		}
		metrics.RecordLookup(metrics.OutcomeOK, len(res.Skipped), elapsed)
		l.logger.Debug().
			Str("title", title).
			Int("k", k).
			Int("returned", res.Len()).
			Dur("duration", elapsed).
			Msg("Recommendations computed")
	}

	return res, err
}
