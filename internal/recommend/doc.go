// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package recommend implements the top-K similarity lookup.

Given a title, the lookup resolves it to the first catalog row with that exact
title, reads that row of the similarity matrix, ranks every column by
descending score and returns the K best entries other than the query itself.

# Ordering

Candidates are sorted with a stable sort on score, descending. Equal scores
keep ascending column order, and NaN scores sort after every number. The query
row is removed wherever it lands in the ranking rather than assuming it is
first, so a row with a non-maximal self score still excludes itself.

# Bounds

A selected column that has no movie in the catalog is skipped and logged; the
surviving entries keep their relative order and no replacement candidate is
pulled in. A resolved row beyond the matrix is reported as ErrDataMismatch.

# Errors

	res, err := lookup.Recommend(ctx, "Avatar", 5)
	switch {
	case errors.Is(err, recommend.ErrNotFound):
	    // user-correctable: unknown title
	case errors.Is(err, recommend.ErrDataMismatch):
	    // catalog and matrix disagree
	}

Both errors come with an empty, non-nil Result.
*/
package recommend
