// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidCatalog is wrapped by every validation failure in New and Load.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the immutable pairing of the movie table and the similarity
// matrix, plus lookup data derived from them at construction.
type Catalog struct {
	movies     []Movie
	matrix     [][]float64
	titleIndex map[string]int
	idIndex    map[int]int
	genres     []string
	minYear    int
	maxYear    int
	hasYears   bool
}

// New validates movies and matrix and builds a Catalog. The slices are owned
// by the Catalog afterwards and must not be modified by the caller.
func New(movies []Movie, matrix [][]float64) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: movie table is empty", ErrInvalidCatalog)
	}
	if len(matrix) != len(movies) {
		return nil, fmt.Errorf("%w: similarity matrix has %d rows but movie table has %d movies",
			ErrInvalidCatalog, len(matrix), len(movies))
	}
	for i, row := range matrix {
		if len(row) != len(movies) {
			return nil, fmt.Errorf("%w: similarity row %d has %d columns, want %d",
				ErrInvalidCatalog, i, len(row), len(movies))
		}
	}

	c := &Catalog{
		movies:     movies,
		matrix:     matrix,
		titleIndex: make(map[string]int, len(movies)),
		idIndex:    make(map[int]int, len(movies)),
	}

	genreSet := make(map[string]struct{})
	for i, m := range movies {
		if strings.TrimSpace(m.Title) == "" {
			return nil, fmt.Errorf("%w: movie at row %d (id %d) has an empty title", ErrInvalidCatalog, i, m.ID)
		}
		if _, seen := c.titleIndex[m.Title]; !seen {
			c.titleIndex[m.Title] = i
		}
		if _, seen := c.idIndex[m.ID]; !seen {
			c.idIndex[m.ID] = i
		}
		for _, g := range m.Genres {
			genreSet[g] = struct{}{}
		}
		if y, ok := m.Year(); ok {
			if !c.hasYears || y < c.minYear {
				c.minYear = y
			}
			if !c.hasYears || y > c.maxYear {
				c.maxYear = y
			}
			c.hasYears = true
		}
	}

	c.genres = make([]string, 0, len(genreSet))
	for g := range genreSet {
		c.genres = append(c.genres, g)
	}
	sort.Strings(c.genres)

	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movie returns the movie at row i.
func (c *Catalog) Movie(i int) (Movie, bool) {
	if i < 0 || i >= len(c.movies) {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Movies returns the movie table in row order. The slice is shared and must
// be treated as read-only.
func (c *Catalog) Movies() []Movie {
	return c.movies
}

// IndexOf returns the row of the first movie whose title equals title exactly.
func (c *Catalog) IndexOf(title string) (int, bool) {
	i, ok := c.titleIndex[title]
	return i, ok
}

// FindByID returns the row of the first movie with the given external id.
func (c *Catalog) FindByID(id int) (int, bool) {
	i, ok := c.idIndex[id]
	return i, ok
}

// RowCount returns the number of similarity rows.
func (c *Catalog) RowCount() int {
	return len(c.matrix)
}

// Row returns similarity row i. The slice is shared and must be treated as read-only.
func (c *Catalog) Row(i int) ([]float64, bool) {
	if i < 0 || i >= len(c.matrix) {
		return nil, false
	}
	return c.matrix[i], true
}

// Genres returns the sorted set of genres present in the table.
func (c *Catalog) Genres() []string {
	return c.genres
}

// HasGenres reports whether any movie carries genre information.
func (c *Catalog) HasGenres() bool {
	return len(c.genres) > 0
}

// YearBounds returns the earliest and latest release year in the table.
// ok is false when no movie has a release year.
func (c *Catalog) YearBounds() (minYear, maxYear int, ok bool) {
	return c.minYear, c.maxYear, c.hasYears
}
