// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package present

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/index.html
var templateFS embed.FS

// Option is one entry of a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// GenreOption is one entry of the genre multi-select.
type GenreOption struct {
	Name     string
	Selected bool
}

// PageData is everything the HTML page renders.
type PageData struct {
	Query          string
	Genres         []GenreOption
	HasYears       bool
	CatalogYearMin int
	CatalogYearMax int
	YearMin        int
	YearMax        int
	Titles         []string // filtered selection list
	Selected       string
	K              int
	MinK           int
	MaxK           int
	SortOptions    []Option
	GridColumns    int
	Submitted      bool
	Error          string
	Rows           [][]Card
	MetadataOnline bool
}

// NewSortOptions builds the sort selector with current selected.
func NewSortOptions(current SortMode) []Option {
	opts := make([]Option, len(SortModes))
	for i, m := range SortModes {
		opts[i] = Option{Value: string(m), Label: m.Label(), Selected: m == current}
	}
	return opts
}

// NewGenreOptions marks the selected genres among all.
func NewGenreOptions(all, selected []string) []GenreOption {
	chosen := make(map[string]bool, len(selected))
	for _, g := range selected {
		chosen[g] = true
	}
	opts := make([]GenreOption, len(all))
	for i, g := range all {
		opts[i] = GenreOption{Name: g, Selected: chosen[g]}
	}
	return opts
}

// Renderer renders the HTML page.
type Renderer struct {
	page *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{page: page}, nil
}

// Render writes the page for data to w. The page is rendered into a buffer
// first so a template error never produces a partial response.
func (r *Renderer) Render(w io.Writer, data *PageData) error {
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
