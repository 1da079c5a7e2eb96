// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import "slices"

// Movie is one row of the movie table.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres,omitempty"`
	ReleaseYear *int     `json:"release_year,omitempty"`
}

// HasGenre reports whether the movie carries genre (exact match).
func (m Movie) HasGenre(genre string) bool {
	return slices.Contains(m.Genres, genre)
}

// Year returns the release year and whether one is known.
func (m Movie) Year() (int, bool) {
	if m.ReleaseYear == nil {
		return 0, false
	}
	return *m.ReleaseYear, true
}
