// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type testRequest struct {
	Title   string `query:"title" validate:"notblank,max=20"`
	K       int    `query:"k" validate:"min=1,max=10"`
	Sort    string `query:"sort" validate:"omitempty,sortmode"`
	Limit   int    `json:"limit" validate:"min=1,max=500"`
	YearMin int    `query:"year_min" validate:"omitempty,gte=1800"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input testRequest
	}{
		{"typical", testRequest{Title: "Avatar", K: 5, Sort: "popularity", Limit: 50}},
		{"bounds", testRequest{Title: "A", K: 1, Limit: 1}},
		{"upper bounds", testRequest{Title: "A", K: 10, Limit: 500, YearMin: 1800}},
		{"sort case-insensitive", testRequest{Title: "A", K: 3, Sort: "Rating", Limit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     testRequest
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"blank title", testRequest{Title: "   ", K: 5, Limit: 1}, "title", "notblank", "title must not be blank"},
		{"k too small", testRequest{Title: "A", K: 0, Limit: 1}, "k", "min", "k must be at least 1"},
		{"k too large", testRequest{Title: "A", K: 11, Limit: 1}, "k", "max", "k must be at most 10"},
		{"bad sort", testRequest{Title: "A", K: 5, Sort: "date", Limit: 1}, "sort", "sortmode", "sort must be one of: relevance, popularity, rating"},
		{"json tag name", testRequest{Title: "A", K: 5, Limit: 0}, "limit", "min", "limit must be at least 1"},
		{"long title", testRequest{Title: strings.Repeat("x", 21), K: 5, Limit: 1}, "title", "max", "title must be at most 20 characters"},
		{"year too early", testRequest{Title: "A", K: 5, Limit: 1, YearMin: 1700}, "year_min", "gte", "year_min must be greater than or equal to 1800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() expected error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("field/tag = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

// ===================================================================================================
// ValidateVar Tests
// ===================================================================================================

func TestValidateVar(t *testing.T) {
	t.Parallel()

	if err := ValidateVar(5, "k", "min=1,max=10"); err != nil {
		t.Errorf("ValidateVar(5) unexpected error: %v", err)
	}

	verr := ValidateVar(12, "k", "min=1,max=10")
	if verr == nil {
		t.Fatal("ValidateVar(12) expected error")
	}
	if got := verr.Errors()[0]; got.Field() != "k" || got.Param() != "10" || got.Value() != 12 {
		t.Errorf("error = field %q param %q value %v", got.Field(), got.Param(), got.Value())
	}
}

// ===================================================================================================
// APIError Conversion Tests
// ===================================================================================================

func TestToAPIError_Single(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&testRequest{Title: "A", K: 0, Limit: 1})
	apiErr := verr.ToAPIError()

	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "k must be at least 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "k" {
		t.Errorf("Details[field] = %v", apiErr.Details["field"])
	}
}

func TestToAPIError_Multiple(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&testRequest{Title: "", K: 0, Limit: 0})
	apiErr := verr.ToAPIError()

	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v, want 3 entries", apiErr.Details["fields"])
	}
	for _, want := range []string{"title", "k", "limit"} {
		if !strings.Contains(apiErr.Message, want) {
			t.Errorf("Message %q should mention %s", apiErr.Message, want)
		}
	}
	if verr.Error() != apiErr.Message {
		t.Errorf("Error() = %q, want %q", verr.Error(), apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	t.Parallel()

	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}
