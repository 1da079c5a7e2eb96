// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api serves the HTML page and the JSON API over a chi router.

# Routes

	GET /                                  HTML recommender page
	GET /api/v1/health/live                liveness probe
	GET /api/v1/health/ready               readiness probe (catalog loaded)
	GET /api/v1/movies                     filtered, paginated catalog
	GET /api/v1/movies/{id}/details        enrichment for one movie id
	GET /api/v1/genres                     sorted genre list
	GET /api/v1/years                      release year bounds
	GET /api/v1/recommendations            ranked, enriched recommendations
	GET /metrics                           Prometheus metrics

# Response Format

Every JSON endpoint answers with the same envelope:

	{
	  "success": false,
	  "error": {"code": "NOT_FOUND", "message": "...", "request_id": "..."},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 1}
	}

Lookup errors map to HTTP statuses: an unknown title is 404 NOT_FOUND, a
catalog and matrix disagreement is 409 DATA_MISMATCH and invalid parameters
are 400 VALIDATION_FAILED.

# Middleware

Request IDs, panic recovery, CORS (go-chi/cors), per-IP rate limiting
(go-chi/httprate), response compression and Prometheus request metrics are
applied in that order.
*/
package api
