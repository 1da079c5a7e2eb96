// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"strconv"
	"strings"
)

const (
	// DefaultOverview is shown when the upstream has no overview.
	DefaultOverview = "No overview available"

	// NotAvailable renders a missing popularity or rating.
	NotAvailable = "N/A"
)

// MovieResponse is the subset of the TMDB movie payload used for display.
// Pointer fields distinguish absent or null values from zero.
type MovieResponse struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	PosterPath  *string  `json:"poster_path"`
	Overview    *string  `json:"overview"`
	Popularity  *float64 `json:"popularity"`
	VoteAverage *float64 `json:"vote_average"`
}

// Details holds resolved display values for one movie.
type Details struct {
	MovieID    int      `json:"movie_id"`
	PosterURL  string   `json:"poster_url"`
	Overview   string   `json:"overview"`
	Popularity *float64 `json:"popularity"`
	Rating     *float64 `json:"rating"`
	Fetched    bool     `json:"fetched"` // false when placeholder values were used
}

// Resolver turns upstream payloads into Details.
type Resolver struct {
	ImageBaseURL     string
	PlaceholderImage string
}

// Placeholder returns the Details shown when no metadata is available.
func (r Resolver) Placeholder(movieID int) Details {
	return Details{
		MovieID:   movieID,
		PosterURL: r.PlaceholderImage,
		Overview:  DefaultOverview,
	}
}

// Resolve maps a payload to Details, filling defaults for missing fields.
func (r Resolver) Resolve(movieID int, resp *MovieResponse) Details {
	if resp == nil {
		return r.Placeholder(movieID)
	}

	d := Details{
		MovieID:    movieID,
		PosterURL:  r.posterURL(resp.PosterPath),
		Overview:   DefaultOverview,
		Popularity: resp.Popularity,
		Rating:     resp.VoteAverage,
		Fetched:    true,
	}
	if resp.Overview != nil && *resp.Overview != "" {
		d.Overview = *resp.Overview
	}
	return d
}

func (r Resolver) posterURL(path *string) string {
	if path == nil || strings.TrimSpace(*path) == "" {
		return r.PlaceholderImage
	}
	return strings.TrimRight(r.ImageBaseURL, "/") + "/" + strings.TrimLeft(*path, "/")
}

// PopularityText renders popularity for display.
func (d Details) PopularityText() string {
	return formatOptional(d.Popularity)
}

// RatingText renders the vote average for display.
func (d Details) RatingText() string {
	return formatOptional(d.Rating)
}

// SortPopularity returns popularity, or 0 when missing.
func (d Details) SortPopularity() float64 {
	if d.Popularity == nil {
		return 0
	}
	return *d.Popularity
}

// SortRating returns the vote average, or 0 when missing.
func (d Details) SortRating() float64 {
	if d.Rating == nil {
		return 0
	}
	return *d.Rating
}

func formatOptional(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
