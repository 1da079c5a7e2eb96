// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// BreakerName labels the metadata breaker in metrics and logs.
const BreakerName = "metadata-api"

// BreakerSettings tunes the circuit breaker.
type BreakerSettings struct {
	MinRequests  uint32        // requests in a window before tripping is considered
	FailureRatio float64       // failure share that opens the circuit
	Interval     time.Duration // closed-state count reset period
	Timeout      time.Duration // open period before a half-open probe
}

// DefaultBreakerSettings opens after 60% failures over at least 5 requests
// and probes again after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MinRequests:  5,
		FailureRatio: 0.6,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
	}
}

// CircuitBreakerClient wraps a Fetcher with a circuit breaker.
//
// Client errors such as 404 for an unknown id count as successes; they say
// nothing about upstream health.
type CircuitBreakerClient struct {
	fetcher Fetcher
	cb      *gobreaker.CircuitBreaker[*MovieResponse]
	name    string
}

// NewCircuitBreakerClient wraps fetcher with the given settings.
func NewCircuitBreakerClient(fetcher Fetcher, settings BreakerSettings) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*MovieResponse](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 1,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: isBreakerSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreakerClient{
		fetcher: fetcher,
		cb:      cb,
		name:    BreakerName,
	}
}

// isBreakerSuccess treats upstream client errors and caller cancellation as
// healthy responses.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 &&
			statusErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}

// FetchMovie fetches through the breaker.
func (c *CircuitBreakerClient) FetchMovie(ctx context.Context, movieID int) (*MovieResponse, error) {
	resp, err := c.cb.Execute(func() (*MovieResponse, error) {
		return c.fetcher.FetchMovie(ctx, movieID)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			metrics.RecordMetadataFetch(metrics.FetchRejected, 0)
			return nil, err
		}
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	return resp, nil
}

// State returns the current breaker state.
func (c *CircuitBreakerClient) State() gobreaker.State {
	return c.cb.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
