// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package present

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Filter narrows the catalog to the titles offered for selection.
// Zero values disable each criterion.
type Filter struct {
	Query   string   // case-insensitive title substring
	Genres  []string // any selected genre matches
	YearMin *int     // inclusive
	YearMax *int     // inclusive
}

// Active reports whether any criterion is set.
func (f Filter) Active() bool {
	return strings.TrimSpace(f.Query) != "" || len(f.Genres) > 0 || f.YearMin != nil || f.YearMax != nil
}

// yearRange resolves the requested bounds against the catalog bounds. It
// reports whether the range is narrower than the catalog, in which case
// movies without a year are excluded.
func (f Filter) yearRange(c *catalog.Catalog) (lo, hi int, narrowed, ok bool) {
	minYear, maxYear, ok := c.YearBounds()
	if !ok {
		return 0, 0, false, false
	}
	lo, hi = minYear, maxYear
	if f.YearMin != nil {
		lo = *f.YearMin
	}
	if f.YearMax != nil {
		hi = *f.YearMax
	}
	narrowed = lo > minYear || hi < maxYear
	return lo, hi, narrowed, true
}

// Apply returns the catalog movies matching f, in catalog order.
//
// Movies without a release year stay selectable while the year range covers
// the whole catalog and are dropped once either bound is narrowed. A plain
// range comparison would drop them whenever the catalog has a year column.
func Apply(c *catalog.Catalog, f Filter) []catalog.Movie {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	lo, hi, narrowed, hasYears := f.yearRange(c)

	out := make([]catalog.Movie, 0, c.Len())
	for _, m := range c.Movies() {
		if query != "" && !strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		if len(f.Genres) > 0 && !matchesAnyGenre(m, f.Genres) {
			continue
		}
		if hasYears {
			year, known := m.Year()
			if known && (year < lo || year > hi) {
				continue
			}
			if !known && narrowed {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

func matchesAnyGenre(m catalog.Movie, genres []string) bool {
	for _, g := range genres {
		if m.HasGenre(g) {
			return true
		}
	}
	return false
}

// Titles returns the titles of movies, in order.
func Titles(movies []catalog.Movie) []string {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}
	return titles
}
