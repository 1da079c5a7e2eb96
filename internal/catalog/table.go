// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	// DuckDB driver registers itself as "duckdb"
	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"
)

// column aliases, first match wins
var (
	idColumns    = []string{"id", "movie_id"}
	titleColumns = []string{"title"}
	genreColumns = []string{"genres", "genre"}
	yearColumns  = []string{"release_year", "year"}
	dateColumns  = []string{"release_date"}
)

// LoadMovies reads the movie table at path through an in-memory DuckDB
// instance. The reader is chosen by extension: .parquet, .json/.jsonl/.ndjson,
// anything else is treated as CSV. Row order is preserved.
func LoadMovies(ctx context.Context, path string) ([]Movie, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	// A single connection keeps preserve_insertion_order semantics simple.
	db.SetMaxOpenConns(1)

	source := tableSource(path)

	columns, err := describeColumns(ctx, db, source)
	if err != nil {
		return nil, fmt.Errorf("describe movie table %s: %w", path, err)
	}

	query, err := buildSelect(columns, source)
	if err != nil {
		return nil, fmt.Errorf("%w: movie table %s: %v", ErrInvalidCatalog, path, err)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query movie table %s: %w", path, err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var (
			id     sql.NullInt64
			title  sql.NullString
			genres any
			year   sql.NullInt64
		)
		if err := rows.Scan(&id, &title, &genres, &year); err != nil {
			return nil, fmt.Errorf("scan movie row %d: %w", len(movies), err)
		}
		if !id.Valid {
			return nil, fmt.Errorf("%w: movie at row %d has no id", ErrInvalidCatalog, len(movies))
		}

		m := Movie{
			ID:     int(id.Int64),
			Title:  title.String,
			Genres: parseGenres(genres),
		}
		if year.Valid {
			y := int(year.Int64)
			m.ReleaseYear = &y
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read movie table %s: %w", path, err)
	}

	return movies, nil
}

// tableSource returns the DuckDB table function expression for path.
func tableSource(path string) string {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return "read_parquet(" + quoted + ")"
	case ".json", ".jsonl", ".ndjson":
		return "read_json_auto(" + quoted + ")"
	default:
		return "read_csv_auto(" + quoted + ", header = true)"
	}
}

// describeColumns returns column name -> DuckDB type for source.
func describeColumns(ctx context.Context, db *sql.DB, source string) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]string)
	for rows.Next() {
		var name, colType, null, key, def, extra sql.NullString
		if err := rows.Scan(&name, &colType, &null, &key, &def, &extra); err != nil {
			return nil, err
		}
		columns[strings.ToLower(name.String)] = colType.String
	}
	return columns, rows.Err()
}

// buildSelect projects the source onto (id, title, genres, year). Missing
// optional columns become NULL.
func buildSelect(columns map[string]string, source string) (string, error) {
	idCol, ok := pickColumn(columns, idColumns)
	if !ok {
		return "", fmt.Errorf("missing required column %s", strings.Join(idColumns, " or "))
	}
	titleCol, ok := pickColumn(columns, titleColumns)
	if !ok {
		return "", fmt.Errorf("missing required column title")
	}

	genresExpr := "NULL"
	if col, ok := pickColumn(columns, genreColumns); ok {
		genresExpr = quoteIdent(col)
		if !strings.HasSuffix(columns[col], "[]") {
			genresExpr = "CAST(" + genresExpr + " AS VARCHAR)"
		}
	}

	yearExpr := "NULL"
	if col, ok := pickColumn(columns, yearColumns); ok {
		yearExpr = "TRY_CAST(" + quoteIdent(col) + " AS BIGINT)"
	} else if col, ok := pickColumn(columns, dateColumns); ok {
		yearExpr = "CAST(year(TRY_CAST(" + quoteIdent(col) + " AS DATE)) AS BIGINT)"
	}

	return fmt.Sprintf(
		"SELECT TRY_CAST(%s AS BIGINT), CAST(%s AS VARCHAR), %s, %s FROM %s",
		quoteIdent(idCol), quoteIdent(titleCol), genresExpr, yearExpr, source,
	), nil
}

// pickColumn returns the first alias present in columns.
func pickColumn(columns map[string]string, aliases []string) (string, bool) {
	for _, a := range aliases {
		if _, ok := columns[a]; ok {
			return a, true
		}
	}
	return "", false
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// parseGenres normalises a genres cell. Accepted shapes: a DuckDB list, a JSON
// array of strings, a JSON array of {"name": ...} objects (raw TMDB exports),
// a Python list repr, or a "|" or ","-separated string.
func parseGenres(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(val))
		for _, g := range val {
			if s, ok := g.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return nilIfEmpty(out)
	case []byte:
		return parseGenreString(string(val))
	case string:
		return parseGenreString(val)
	default:
		return parseGenreString(fmt.Sprint(val))
	}
}

func parseGenreString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "[") {
		var names []string
		if err := json.Unmarshal([]byte(s), &names); err == nil {
			return parseGenres(toAny(names))
		}
		var objects []struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(s), &objects); err == nil {
			names = make([]string, 0, len(objects))
			for _, o := range objects {
				names = append(names, o.Name)
			}
			return parseGenres(toAny(names))
		}
		// Python list repr, e.g. ['Action', 'Science Fiction'].
		s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	}

	sep := "|"
	if !strings.Contains(s, "|") {
		sep = ","
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(strings.TrimSpace(p), `'"`); p != "" {
			out = append(out, p)
		}
	}
	return nilIfEmpty(out)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func nilIfEmpty(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	return ss
}
