// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package present holds the presentation rules shared by the HTML page and the
JSON API: catalog filters, result sort modes and the fixed-width card grid.

Filters narrow the list of selectable titles; they never affect which
recommendations a lookup returns. Sort modes reorder an already computed
result using enrichment values. Both are pure functions of their inputs.

The HTML page is rendered from an embedded html/template so the binary is
self-contained.
*/
package present
