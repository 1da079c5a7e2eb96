// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"bufio"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// LoadMatrix decodes a similarity matrix stored as a JSON array of numeric
// arrays. Shape is not checked here; New enforces it against the movie table.
func LoadMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open similarity matrix: %w", err)
	}
	defer f.Close()

	var matrix [][]float64
	dec := json.NewDecoder(bufio.NewReaderSize(f, 1<<20))
	if err := dec.Decode(&matrix); err != nil {
		return nil, fmt.Errorf("%w: decode similarity matrix %s: %v", ErrInvalidCatalog, path, err)
	}
	if matrix == nil {
		return nil, fmt.Errorf("%w: similarity matrix %s is null", ErrInvalidCatalog, path)
	}
	return matrix, nil
}
