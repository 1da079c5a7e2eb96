// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"strings"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// sanitizeLogValue replaces control characters so user input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// writeValidationError answers with 400 VALIDATION_FAILED.
func writeValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
}

// writeParamError answers a parse or range failure with 400 VALIDATION_FAILED.
func writeParamError(rw *ResponseWriter, err error) {
	rw.ValidationError(err.Error(), nil)
}
