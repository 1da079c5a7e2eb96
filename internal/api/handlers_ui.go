// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/present"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// UI messages for lookup failures.
const (
	msgNotFound     = "Selected movie not found in dataset. Please choose a valid movie."
	msgDataMismatch = "Similarity matrix mismatch. Try reloading data."
	msgFilteredOut  = "The selected movie no longer matches the filters. Please choose a movie from the list."
)

// Index renders the recommender page. The page is a single GET form: filter
// inputs narrow the movie chooser, and show=1 runs a lookup for the chosen
// title. Invalid inputs are reported on the page rather than as HTTP errors.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := h.buildPage(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (h *Handler) buildPage(r *http.Request) *present.PageData {
	q := r.URL.Query()
	mode, sortErr := present.ParseSortMode(q.Get("sort"))
	if sortErr != nil {
		mode = present.SortRelevance
	}

	data := &present.PageData{
		Query:          q.Get("q"),
		K:              h.config.DefaultK,
		MinK:           h.config.MinK,
		MaxK:           h.config.MaxK,
		SortOptions:    present.NewSortOptions(mode),
		GridColumns:    h.config.GridColumns,
		Submitted:      q.Get("show") != "",
		MetadataOnline: h.enricher != nil && h.enricher.Online(),
	}

	filter := present.Filter{Query: data.Query}

	if h.catalog.HasGenres() {
		filter.Genres = queryList(r, "genres")
		data.Genres = present.NewGenreOptions(h.catalog.Genres(), filter.Genres)
	}

	if minYear, maxYear, ok := h.catalog.YearBounds(); ok {
		data.HasYears = true
		data.CatalogYearMin, data.CatalogYearMax = minYear, maxYear
		data.YearMin, data.YearMax = minYear, maxYear
		if v, err := queryInt(r, "year_min"); err == nil && v != nil {
			data.YearMin = *v
			filter.YearMin = v
		}
		if v, err := queryInt(r, "year_max"); err == nil && v != nil {
			data.YearMax = *v
			filter.YearMax = v
		}
	}

	data.Titles = present.Titles(present.Apply(h.catalog, filter))
	data.Selected = q.Get("title")
	filteredOut := data.Selected != "" && !slices.Contains(data.Titles, data.Selected)
	if !slices.Contains(data.Titles, data.Selected) {
		data.Selected = ""
		if len(data.Titles) > 0 {
			data.Selected = data.Titles[0]
		}
	}

	k, kErr := queryIntDefault(r, "k", h.config.DefaultK)
	if kErr == nil {
		data.K = k
	}

	if !data.Submitted {
		return data
	}

	switch {
	case sortErr != nil:
		data.Error = sortErr.Error()
		return data
	case kErr != nil:
		data.Error = kErr.Error()
		return data
	}
	if verr := h.validateK(k); verr != nil {
		data.Error = verr.Error()
		return data
	}
	if err := validateYearRange(filter.YearMin, filter.YearMax); err != nil {
		data.Error = err.Error()
		return data
	}
	// The chooser fell back to another title; do not run the lookup for it.
	if filteredOut {
		data.Error = msgFilteredOut
		return data
	}

	cards, _, err := h.recommendCards(r.Context(), data.Selected, k, mode)
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		data.Error = msgNotFound
	case errors.Is(err, recommend.ErrDataMismatch):
		data.Error = msgDataMismatch
	case err != nil:
		data.Error = fmt.Sprintf("Recommendation lookup failed: %v", err)
	default:
		data.Rows = present.Grid(cards, h.config.GridColumns)
	}
	return data
}
