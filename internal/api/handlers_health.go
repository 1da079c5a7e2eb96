// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK while the process is serving, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK once a catalog is loaded, 503 otherwise. Metadata is
// reported but never blocks readiness because enrichment degrades to
// placeholders.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ready := h.catalog != nil && h.catalog.Len() > 0
	status := map[string]interface{}{
		"ready":           ready,
		"metadata_online": h.enricher != nil && h.enricher.Online(),
	}
	if h.enricher != nil {
		status["metadata_cache"] = h.enricher.CacheStats()
	}
	if !ready {
		rw.Status(http.StatusServiceUnavailable, status)
		return
	}

	status["movies"] = h.catalog.Len()
	rw.Success(status)
}
