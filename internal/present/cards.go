// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package present

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// SortMode orders recommendation cards.
type SortMode string

// Sort modes.
const (
	SortRelevance  SortMode = "relevance"
	SortPopularity SortMode = "popularity"
	SortRating     SortMode = "rating"
)

// SortModes lists the modes in display order.
var SortModes = []SortMode{SortRelevance, SortPopularity, SortRating}

// ParseSortMode parses a mode case-insensitively. Empty selects relevance.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortRelevance:
		return SortRelevance, nil
	case SortPopularity:
		return SortPopularity, nil
	case SortRating:
		return SortRating, nil
	}
	return "", fmt.Errorf("unknown sort mode %q", s)
}

// Label returns the display name of the mode.
func (m SortMode) Label() string {
	switch m {
	case SortPopularity:
		return "Popularity"
	case SortRating:
		return "Rating"
	default:
		return "Relevance"
	}
}

// Card is one recommendation ready for display.
type Card struct {
	Rank       int              `json:"rank"`
	MovieID    int              `json:"movie_id"`
	Title      string           `json:"title"`
	Score      float64          `json:"score"`
	PosterURL  string           `json:"poster_url"`
	Overview   string           `json:"overview"`
	Popularity *float64         `json:"popularity"`
	Rating     *float64         `json:"rating"`
	Details    metadata.Details `json:"-"`
}

// PopularityText renders popularity or N/A.
func (c Card) PopularityText() string {
	return c.Details.PopularityText()
}

// RatingText renders the rating or N/A.
func (c Card) RatingText() string {
	return c.Details.RatingText()
}

// BuildCards pairs lookup items with their enrichment. details must be
// parallel to res.Items; missing entries leave the card without metadata.
func BuildCards(res *recommend.Result, details []metadata.Details) []Card {
	cards := make([]Card, len(res.Items))
	for i, item := range res.Items {
		card := Card{
			Rank:    item.Rank,
			MovieID: item.ID,
			Title:   item.Title,
			Score:   item.Score,
		}
		if i < len(details) {
			d := details[i]
			card.Details = d
			card.PosterURL = d.PosterURL
			card.Overview = d.Overview
			card.Popularity = d.Popularity
			card.Rating = d.Rating
		}
		cards[i] = card
	}
	return cards
}

// SortCards returns a copy of cards ordered by mode. Relevance keeps lookup
// order; popularity and rating sort descending with a stable sort, missing
// values counting as 0.
func SortCards(cards []Card, mode SortMode) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)

	var key func(Card) float64
	switch mode {
	case SortPopularity:
		key = func(c Card) float64 { return c.Details.SortPopularity() }
	case SortRating:
		key = func(c Card) float64 { return c.Details.SortRating() }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return out
}

// Grid wraps cards into rows of width columns. A width below 1 uses one
// column.
func Grid(cards []Card, width int) [][]Card {
	if width < 1 {
		width = 1
	}
	rows := make([][]Card, 0, (len(cards)+width-1)/width)
	for start := 0; start < len(cards); start += width {
		end := start + width
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, cards[start:end])
	}
	return rows
}
