// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is created lazily and shared. Field names in
// error messages come from the `query` struct tag (falling back to `json`) so
// messages name the parameter the client actually sent.
//
// # Custom Validators
//
//   - notblank: string must contain a non-whitespace character
//   - sortmode: relevance, popularity or rating (case-insensitive)
//
// # Usage
//
//	type recommendationsRequest struct {
//	    Title string `query:"title" validate:"notblank,max=500"`
//	    K     int    `query:"k"     validate:"min=1,max=10"`
//	    Sort  string `query:"sort"  validate:"omitempty,sortmode"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Bounds that come from configuration are checked with ValidateVar:
//
//	verr := validation.ValidateVar(k, "k", fmt.Sprintf("min=%d,max=%d", minK, maxK))
package validation
