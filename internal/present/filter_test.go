// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package present

import (
	"reflect"
	"testing"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

func intPtr(v int) *int { return &v }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	movies := []catalog.Movie{
		{ID: 1, Title: "The Dark Knight", Genres: []string{"Action", "Crime"}, ReleaseYear: intPtr(2008)},
		{ID: 2, Title: "Dark City", Genres: []string{"Science Fiction"}, ReleaseYear: intPtr(1998)},
		{ID: 3, Title: "Up", Genres: []string{"Animation", "Family"}, ReleaseYear: intPtr(2009)},
		{ID: 4, Title: "Untitled Project"},
		{ID: 5, Title: "Heat", Genres: []string{"Action", "Crime"}, ReleaseYear: intPtr(1995)},
	}
	n := len(movies)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}
	c, err := catalog.New(movies, matrix)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func TestApply(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"The Dark Knight", "Dark City", "Up", "Untitled Project", "Heat"}},
		{"case-insensitive substring", Filter{Query: "dARk"}, []string{"The Dark Knight", "Dark City"}},
		{"substring no match", Filter{Query: "zzz"}, []string{}},
		{"any genre", Filter{Genres: []string{"Family", "Science Fiction"}}, []string{"Dark City", "Up"}},
		{"genre excludes missing genres", Filter{Genres: []string{"Action"}}, []string{"The Dark Knight", "Heat"}},
		{"full year range keeps unknown year", Filter{YearMin: intPtr(1995), YearMax: intPtr(2009)},
			[]string{"The Dark Knight", "Dark City", "Up", "Untitled Project", "Heat"}},
		{"narrow year range drops unknown year", Filter{YearMin: intPtr(2000)},
			[]string{"The Dark Knight", "Up"}},
		{"narrow upper bound drops unknown year", Filter{YearMax: intPtr(2008)},
			[]string{"The Dark Knight", "Dark City", "Heat"}},
		{"inclusive bounds", Filter{YearMin: intPtr(1998), YearMax: intPtr(2008)},
			[]string{"The Dark Knight", "Dark City"}},
		{"combined", Filter{Query: "dark", Genres: []string{"Crime"}, YearMax: intPtr(2010)},
			[]string{"The Dark Knight"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Titles(Apply(c, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_CatalogWithoutYears(t *testing.T) {
	t.Parallel()

	c, err := catalog.New(
		[]catalog.Movie{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
		[][]float64{{1, 0}, {0, 1}},
	)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	got := Apply(c, Filter{YearMin: intPtr(2000), YearMax: intPtr(2001)})
	if len(got) != 2 {
		t.Errorf("year filter on a catalog without years should be ignored, got %v", Titles(got))
	}
}

func TestFilterActive(t *testing.T) {
	t.Parallel()

	if (Filter{}).Active() {
		t.Error("empty filter should be inactive")
	}
	if (Filter{Query: "  "}).Active() {
		t.Error("whitespace query should be inactive")
	}
	if !(Filter{YearMax: intPtr(2000)}).Active() {
		t.Error("year bound should activate the filter")
	}
}
