// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/present"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// defaultMoviesLimit is the page size when limit is omitted.
const defaultMoviesLimit = 100

// moviesRequest holds parameters for GET /api/v1/movies.
type moviesRequest struct {
	Query   string   `query:"q" validate:"max=200"`
	Genres  []string `query:"genres" validate:"max=50,dive,max=100"`
	YearMin *int     `query:"year_min" validate:"omitempty,gte=1800,lte=3000"`
	YearMax *int     `query:"year_max" validate:"omitempty,gte=1800,lte=3000"`
	Limit   int      `query:"limit" validate:"min=1,max=1000"`
	Offset  int      `query:"offset" validate:"min=0"`
}

// recommendationsRequest holds parameters for GET /api/v1/recommendations.
type recommendationsRequest struct {
	Title string `query:"title" validate:"notblank,max=500"`
	K     int    `query:"k"`
	Sort  string `query:"sort" validate:"omitempty,sortmode"`
}

// paramError reports a query parameter that could not be parsed.
type paramError struct {
	field string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be an integer, got %q", e.field, e.value)
}

// queryInt parses an optional integer parameter.
func queryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &paramError{field: key, value: raw}
	}
	return &v, nil
}

// queryIntDefault parses an integer parameter, returning def when absent.
func queryIntDefault(r *http.Request, key string, def int) (int, error) {
	v, err := queryInt(r, key)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}

// queryList collects a multi-valued parameter, also splitting comma-separated
// values: ?genres=Action&genres=Drama and ?genres=Action,Drama are equal.
func queryList(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseMoviesRequest(r *http.Request) (*moviesRequest, error) {
	req := &moviesRequest{
		Query:  r.URL.Query().Get("q"),
		Genres: queryList(r, "genres"),
	}

	var err error
	if req.YearMin, err = queryInt(r, "year_min"); err != nil {
		return nil, err
	}
	if req.YearMax, err = queryInt(r, "year_max"); err != nil {
		return nil, err
	}
	if req.Limit, err = queryIntDefault(r, "limit", defaultMoviesLimit); err != nil {
		return nil, err
	}
	if req.Offset, err = queryIntDefault(r, "offset", 0); err != nil {
		return nil, err
	}
	return req, nil
}

func (req *moviesRequest) filter() present.Filter {
	return present.Filter{
		Query:   req.Query,
		Genres:  req.Genres,
		YearMin: req.YearMin,
		YearMax: req.YearMax,
	}
}

func parseRecommendationsRequest(r *http.Request, defaultK int) (*recommendationsRequest, error) {
	k, err := queryIntDefault(r, "k", defaultK)
	if err != nil {
		return nil, err
	}
	return &recommendationsRequest{
		Title: r.URL.Query().Get("title"),
		K:     k,
		Sort:  r.URL.Query().Get("sort"),
	}, nil
}

// validateK checks k against the configured bounds.
func (h *Handler) validateK(k int) *validation.RequestValidationError {
	return validation.ValidateVar(k, "k", fmt.Sprintf("min=%d,max=%d", h.config.MinK, h.config.MaxK))
}

// validateYearRange rejects an inverted range.
func validateYearRange(yearMin, yearMax *int) error {
	if yearMin != nil && yearMax != nil && *yearMin > *yearMax {
		return fmt.Errorf("year_min (%d) must not exceed year_max (%d)", *yearMin, *yearMax)
	}
	return nil
}
