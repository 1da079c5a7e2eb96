// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/tomtom215/reelmatch/internal/present"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// yearsResponse reports the catalog release year bounds.
type yearsResponse struct {
	Available bool `json:"available"`
	Min       int  `json:"min,omitempty"`
	Max       int  `json:"max,omitempty"`
}

// Movies lists catalog movies matching the filter parameters, in catalog
// order.
//
// Query parameters: q, genres (repeatable or comma-separated), year_min,
// year_max, limit (1-1000, default 100), offset.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseMoviesRequest(r)
	if err != nil {
		writeParamError(rw, err)
		return
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		writeValidationError(rw, verr)
		return
	}
	if err := validateYearRange(req.YearMin, req.YearMax); err != nil {
		writeParamError(rw, err)
		return
	}

	matched := present.Apply(h.catalog, req.filter())
	total := len(matched)

	start := req.Offset
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	page := matched[start:end]

	rw.SuccessWithPagination(page, &PaginationMeta{
		Total:   total,
		Count:   len(page),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: end < total,
	})
}

// Genres returns the sorted genre list. Empty when the table has no genres.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	genres := h.catalog.Genres()
	if genres == nil {
		genres = []string{}
	}
	WriteSuccess(w, r, genres)
}

// Years returns the release year bounds of the catalog.
func (h *Handler) Years(w http.ResponseWriter, r *http.Request) {
	minYear, maxYear, ok := h.catalog.YearBounds()
	WriteSuccess(w, r, yearsResponse{Available: ok, Min: minYear, Max: maxYear})
}
