// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/present"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// recommendationsResponse is the payload of GET /api/v1/recommendations.
type recommendationsResponse struct {
	Query   string         `json:"query"`
	K       int            `json:"k"`
	Sort    string         `json:"sort"`
	Count   int            `json:"count"`
	Cards   []present.Card `json:"cards"`
	Skipped []int          `json:"skipped,omitempty"`
}

// movieDetailsResponse is the payload of GET /api/v1/movies/{id}/details.
type movieDetailsResponse struct {
	Movie          catalog.Movie    `json:"movie"`
	Details        metadata.Details `json:"details"`
	PopularityText string           `json:"popularity_text"`
	RatingText     string           `json:"rating_text"`
}

// recommendCards runs a lookup, enriches the result and orders it by mode.
func (h *Handler) recommendCards(ctx context.Context, title string, k int, mode present.SortMode) ([]present.Card, *recommend.Result, error) {
	res, err := h.lookup.Recommend(ctx, title, k)
	if err != nil {
		return nil, res, err
	}

	var details []metadata.Details
	if h.enricher != nil {
		details = h.enricher.Enrich(ctx, res.IDs)
	}
	cards := present.SortCards(present.BuildCards(res, details), mode)
	return cards, res, nil
}

// Recommendations returns the top-k movies most similar to title, enriched
// with display metadata and ordered by sort.
//
// Query parameters: title (required, exact match), k (configured bounds,
// default from configuration), sort (relevance, popularity, rating).
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseRecommendationsRequest(r, h.config.DefaultK)
	if err != nil {
		writeParamError(rw, err)
		return
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		writeValidationError(rw, verr)
		return
	}
	if verr := h.validateK(req.K); verr != nil {
		writeValidationError(rw, verr)
		return
	}

	mode, err := present.ParseSortMode(req.Sort)
	if err != nil {
		writeParamError(rw, err)
		return
	}

	cards, res, err := h.recommendCards(r.Context(), req.Title, req.K, mode)
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		rw.NotFound("Selected movie not found in dataset")
		return
	case errors.Is(err, recommend.ErrDataMismatch):
		rw.DataMismatch("Similarity matrix does not match the movie table")
		return
	case err != nil:
		logging.Ctx(r.Context()).Warn().Err(err).Str("title", sanitizeLogValue(req.Title)).Msg("Recommendation request aborted")
		rw.InternalError("Recommendation lookup failed")
		return
	}

	rw.Success(recommendationsResponse{
		Query:   req.Title,
		K:       req.K,
		Sort:    string(mode),
		Count:   len(cards),
		Cards:   cards,
		Skipped: res.Skipped,
	})
}

// MovieDetails returns enrichment for one catalog movie by external id.
func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeParamError(rw, &paramError{field: "id", value: raw})
		return
	}

	idx, ok := h.catalog.FindByID(id)
	if !ok {
		rw.NotFound("Movie not found in dataset")
		return
	}
	movie, _ := h.catalog.Movie(idx)

	var details metadata.Details
	if h.enricher != nil {
		details = h.enricher.Details(r.Context(), id)
	}

	rw.Success(movieDetailsResponse{
		Movie:          movie,
		Details:        details,
		PopularityText: details.PopularityText(),
		RatingText:     details.RatingText(),
	})
}
