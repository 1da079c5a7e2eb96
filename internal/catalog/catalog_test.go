// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func sampleMovies() []Movie {
	return []Movie{
		{ID: 10, Title: "A", Genres: []string{"Action", "Drama"}, ReleaseYear: intPtr(1999)},
		{ID: 20, Title: "B", Genres: []string{"Comedy"}, ReleaseYear: intPtr(2005)},
		{ID: 30, Title: "C"},
		{ID: 40, Title: "D", Genres: []string{"Action"}, ReleaseYear: intPtr(1987)},
	}
}

func sampleMatrix() [][]float64 {
	return [][]float64{
		{1.0, 0.9, 0.2, 0.5},
		{0.9, 1.0, 0.3, 0.1},
		{0.2, 0.3, 1.0, 0.4},
		{0.5, 0.1, 0.4, 1.0},
	}
}

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	c, err := New(sampleMovies(), sampleMatrix())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.Len() != 4 || c.RowCount() != 4 {
		t.Errorf("Len/RowCount = %d/%d, want 4/4", c.Len(), c.RowCount())
	}
	if got := c.Genres(); !reflect.DeepEqual(got, []string{"Action", "Comedy", "Drama"}) {
		t.Errorf("Genres() = %v", got)
	}
	if !c.HasGenres() {
		t.Error("HasGenres() = false, want true")
	}
	minYear, maxYear, ok := c.YearBounds()
	if !ok || minYear != 1987 || maxYear != 2005 {
		t.Errorf("YearBounds() = %d, %d, %v; want 1987, 2005, true", minYear, maxYear, ok)
	}
}

func TestNew_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		movies []Movie
		matrix [][]float64
	}{
		{"empty table", nil, nil},
		{"fewer rows than movies", sampleMovies(), sampleMatrix()[:3]},
		{"ragged row", sampleMovies(), [][]float64{{1, 0, 0, 0}, {0, 1, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}},
		{"empty title", []Movie{{ID: 1, Title: " "}}, [][]float64{{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.movies, tt.matrix)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("New() error = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestIndexOf_FirstMatchWins(t *testing.T) {
	t.Parallel()

	movies := []Movie{
		{ID: 1, Title: "Heat"},
		{ID: 2, Title: "The Thing"},
		{ID: 3, Title: "Heat"},
	}
	matrix := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	c, err := New(movies, matrix)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if i, ok := c.IndexOf("Heat"); !ok || i != 0 {
		t.Errorf("IndexOf(Heat) = %d, %v; want 0, true", i, ok)
	}
	if _, ok := c.IndexOf("heat"); ok {
		t.Error("IndexOf should be case sensitive")
	}
	if _, ok := c.IndexOf("Nonexistent"); ok {
		t.Error("IndexOf(Nonexistent) should miss")
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	c, err := New(sampleMovies(), sampleMatrix())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if m, ok := c.Movie(1); !ok || m.Title != "B" {
		t.Errorf("Movie(1) = %+v, %v", m, ok)
	}
	if _, ok := c.Movie(4); ok {
		t.Error("Movie(4) should be out of range")
	}
	if _, ok := c.Movie(-1); ok {
		t.Error("Movie(-1) should be out of range")
	}
	if row, ok := c.Row(2); !ok || row[3] != 0.4 {
		t.Errorf("Row(2) = %v, %v", row, ok)
	}
	if _, ok := c.Row(9); ok {
		t.Error("Row(9) should be out of range")
	}
	if i, ok := c.FindByID(40); !ok || i != 3 {
		t.Errorf("FindByID(40) = %d, %v; want 3, true", i, ok)
	}
	if _, ok := c.FindByID(99); ok {
		t.Error("FindByID(99) should miss")
	}
}

func TestYearBounds_NoYears(t *testing.T) {
	t.Parallel()

	c, err := New([]Movie{{ID: 1, Title: "X"}}, [][]float64{{1}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, _, ok := c.YearBounds(); ok {
		t.Error("YearBounds() ok = true, want false")
	}
	if c.HasGenres() {
		t.Error("HasGenres() = true, want false")
	}
}

func TestMovieHelpers(t *testing.T) {
	t.Parallel()

	m := Movie{Title: "A", Genres: []string{"Action"}, ReleaseYear: intPtr(2001)}
	if !m.HasGenre("Action") || m.HasGenre("action") {
		t.Error("HasGenre should match exactly")
	}
	if y, ok := m.Year(); !ok || y != 2001 {
		t.Errorf("Year() = %d, %v", y, ok)
	}
	if _, ok := (Movie{}).Year(); ok {
		t.Error("Year() on movie without year should report false")
	}
}
