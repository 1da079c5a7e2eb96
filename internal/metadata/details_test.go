// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import "testing"

const testPlaceholder = "https://via.placeholder.com/500x750?text=No+Image"

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func testResolver() Resolver {
	return Resolver{
		ImageBaseURL:     "https://image.tmdb.org/t/p/w500",
		PlaceholderImage: testPlaceholder,
	}
}

func TestResolve_FullPayload(t *testing.T) {
	t.Parallel()

	d := testResolver().Resolve(19995, &MovieResponse{
		PosterPath:  strPtr("/kyeqWdyUXW608qlYkRqosgbbJyK.jpg"),
		Overview:    strPtr("In the 22nd century..."),
		Popularity:  floatPtr(185.5),
		VoteAverage: floatPtr(7.6),
	})

	if d.PosterURL != "https://image.tmdb.org/t/p/w500/kyeqWdyUXW608qlYkRqosgbbJyK.jpg" {
		t.Errorf("PosterURL = %q", d.PosterURL)
	}
	if d.Overview != "In the 22nd century..." {
		t.Errorf("Overview = %q", d.Overview)
	}
	if d.PopularityText() != "185.5" || d.RatingText() != "7.6" {
		t.Errorf("texts = %q, %q", d.PopularityText(), d.RatingText())
	}
	if !d.Fetched {
		t.Error("Fetched = false, want true")
	}
}

func TestResolve_MissingPosterPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path *string
	}{
		{"absent", nil},
		{"empty", strPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := testResolver().Resolve(1, &MovieResponse{PosterPath: tt.path})
			if d.PosterURL != testPlaceholder {
				t.Errorf("PosterURL = %q, want placeholder", d.PosterURL)
			}
		})
	}
}

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	d := testResolver().Resolve(1, &MovieResponse{Overview: strPtr("")})

	if d.Overview != DefaultOverview {
		t.Errorf("Overview = %q, want %q", d.Overview, DefaultOverview)
	}
	if d.PopularityText() != NotAvailable || d.RatingText() != NotAvailable {
		t.Errorf("texts = %q, %q; want N/A", d.PopularityText(), d.RatingText())
	}
	if d.SortPopularity() != 0 || d.SortRating() != 0 {
		t.Errorf("sort keys = %v, %v; want 0, 0", d.SortPopularity(), d.SortRating())
	}
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	d := testResolver().Placeholder(42)
	if d.MovieID != 42 || d.PosterURL != testPlaceholder || d.Overview != DefaultOverview || d.Fetched {
		t.Errorf("Placeholder() = %+v", d)
	}
	if d := testResolver().Resolve(42, nil); d.PosterURL != testPlaceholder {
		t.Errorf("Resolve(nil) PosterURL = %q", d.PosterURL)
	}
}

func TestSortKeys(t *testing.T) {
	t.Parallel()

	d := Details{Popularity: floatPtr(12.25), Rating: floatPtr(0)}
	if d.SortPopularity() != 12.25 {
		t.Errorf("SortPopularity() = %v", d.SortPopularity())
	}
	if d.RatingText() != "0" {
		t.Errorf("RatingText() = %q, want 0 (present zero is not N/A)", d.RatingText())
	}
}
