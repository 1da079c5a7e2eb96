// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package catalog holds the movie table and the precomputed similarity matrix.

The two artifacts are produced offline and aligned by row index: row i of the
matrix holds the similarity of movie i to every other movie. A Catalog is
built once at startup, validated, and then shared read-only by every request.
There is no package-level catalog state; callers pass the *Catalog explicitly.

# Loading

Load reads the movie table through DuckDB, so CSV, Parquet and JSON tables
are all accepted, and stream-decodes the matrix from a JSON array of arrays:

	cat, err := catalog.Load(ctx, catalog.LoadConfig{
	    MoviesPath:     "/data/movies.parquet",
	    SimilarityPath: "/data/similarity.json",
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

Required columns are id (or movie_id) and title. genres (a list column, a
delimited string, or a JSON array string) and release_year (or year, or a
release_date from which the year is taken) are optional.

# Validation

The table must be non-empty, every title non-empty, and the matrix square
with one row per movie. Any violation is returned as an error wrapping
ErrInvalidCatalog; nothing is served from a partially loaded catalog.

# Titles

Titles are not guaranteed unique. IndexOf resolves a title to the first row
carrying it, by exact string comparison.
*/
package catalog
