// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// defaultMaintenanceInterval is used when no interval is configured.
const defaultMaintenanceInterval = 10 * time.Minute

// CacheMaintainer performs one round of cache housekeeping.
// Satisfied by *metadata.Enricher.
type CacheMaintainer interface {
	Maintain(ctx context.Context) error
}

// CacheMaintenanceService runs CacheMaintainer.Maintain on a fixed interval.
// A failed round is logged and retried on the next tick; it does not
// restart the service.
type CacheMaintenanceService struct {
	target   CacheMaintainer
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheMaintenanceService creates the service. A non-positive interval
// uses 10 minutes.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheMaintenanceService(target CacheMaintainer, interval time.Duration, logger zerolog.Logger) *CacheMaintenanceService {
	if interval <= 0 {
		interval = defaultMaintenanceInterval
	}
	return &CacheMaintenanceService{
		target:   target,
		interval: interval,
		logger:   logger.With().Str("service", "cache-maintenance").Logger(),
		name:     "cache-maintenance",
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Cache maintenance service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Cache maintenance service stopping")
			return ctx.Err()

		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *CacheMaintenanceService) runOnce(ctx context.Context) {
	start := time.Now()
	err := s.target.Maintain(ctx)
	switch {
	case err == nil:
		s.logger.Debug().Dur("duration", time.Since(start)).Msg("Cache maintenance round complete")
	case errors.Is(err, context.Canceled):
	default:
		s.logger.Warn().Err(err).Msg("Cache maintenance round failed")
	}
}

// String names the service in supervisor events.
func (s *CacheMaintenanceService) String() string {
	return s.name
}
