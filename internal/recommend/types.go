// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

var (
	// ErrNotFound is returned when no catalog movie has the requested title.
	ErrNotFound = errors.New("title not found in catalog")

	// ErrDataMismatch is returned when the resolved row has no similarity row.
	ErrDataMismatch = errors.New("catalog and similarity matrix are out of alignment")
)

// Source is the read side of a catalog needed by the lookup.
// *catalog.Catalog implements it.
type Source interface {
	Len() int
	Movie(i int) (catalog.Movie, bool)
	IndexOf(title string) (int, bool)
	RowCount() int
	Row(i int) ([]float64, bool)
}

// Item is one ranked recommendation.
type Item struct {
	Rank  int     `json:"rank"` // 1-based position after skips
	Index int     `json:"index"`
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Result is the ordered output of a lookup. Names and IDs are parallel to Items.
type Result struct {
	Query      string   `json:"query"`
	QueryIndex int      `json:"query_index"`
	Names      []string `json:"names"`
	IDs        []int    `json:"ids"`
	Items      []Item   `json:"items"`
	Skipped    []int    `json:"skipped,omitempty"` // column indices dropped for being outside the catalog
}

// Len returns the number of recommendations.
func (r *Result) Len() int {
	return len(r.Items)
}

func emptyResult(query string) *Result {
	return &Result{
		Query:      query,
		QueryIndex: -1,
		Names:      []string{},
		IDs:        []int{},
		Items:      []Item{},
	}
}
