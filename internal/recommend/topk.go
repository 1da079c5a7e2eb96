// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// candidate pairs a matrix column with its score.
type candidate struct {
	index int
	score float64
}

// Recommend returns up to k movies most similar to title, best first.
// See the package documentation for ordering and error semantics.
func Recommend(src Source, title string, k int) (*Result, error) {
	queryIndex, ok := src.IndexOf(title)
	if !ok {
		return emptyResult(title), fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	row, ok := src.Row(queryIndex)
	if !ok || queryIndex >= src.RowCount() {
		return emptyResult(title), fmt.Errorf("%w: row %d for %q, matrix has %d rows",
			ErrDataMismatch, queryIndex, title, src.RowCount())
	}

	res := emptyResult(title)
	res.QueryIndex = queryIndex
	if k <= 0 {
		return res, nil
	}

	for _, c := range rank(row, queryIndex, k) {
		movie, ok := src.Movie(c.index)
		if !ok {
			res.Skipped = append(res.Skipped, c.index)
			continue
		}
		res.Items = append(res.Items, Item{
			Rank:  len(res.Items) + 1,
			Index: c.index,
			ID:    movie.ID,
			Title: movie.Title,
			Score: c.score,
		})
		res.Names = append(res.Names, movie.Title)
		res.IDs = append(res.IDs, movie.ID)
	}

	return res, nil
}

// rank orders every column of row by descending score, drops exclude and
// returns the first k. Ties keep ascending column order; NaN sorts last.
func rank(row []float64, exclude, k int) []candidate {
	candidates := make([]candidate, 0, len(row))
	for i, score := range row {
		if i == exclude {
			continue
		}
		candidates = append(candidates, candidate{index: i, score: score})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		sa, sb := candidates[a].score, candidates[b].score
		if math.IsNaN(sb) {
			return !math.IsNaN(sa)
		}
		return sa > sb
	})

	if k < len(candidates) {
		candidates = candidates[:k]
	}
	return candidates
}
