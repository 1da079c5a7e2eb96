// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateCorrelationID(t *testing.T) {
	t.Parallel()

	id := GenerateCorrelationID()
	if len(id) != 8 {
		t.Errorf("expected 8 character correlation ID, got %q", id)
	}
	if id == GenerateCorrelationID() {
		t.Error("expected distinct correlation IDs")
	}
}

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id := GenerateRequestID()
	if len(id) != 36 {
		t.Errorf("expected UUID length 36, got %d (%q)", len(id), id)
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if CorrelationIDFromContext(ctx) != "" || RequestIDFromContext(ctx) != "" {
		t.Fatal("expected empty IDs from bare context")
	}

	ctx = ContextWithCorrelationID(ctx, "abc12345")
	ctx = ContextWithRequestID(ctx, "req-1")

	if got := CorrelationIDFromContext(ctx); got != "abc12345" {
		t.Errorf("CorrelationIDFromContext() = %q, want abc12345", got)
	}
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
}

func TestContextWithNewCorrelationID(t *testing.T) {
	t.Parallel()

	ctx := ContextWithNewCorrelationID(context.Background())
	if CorrelationIDFromContext(ctx) == "" {
		t.Error("expected generated correlation ID")
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	ctx := ContextWithCorrelationID(context.Background(), "corr0001")
	ctx = ContextWithRequestID(ctx, "req-42")

	Ctx(ctx).Info().Msg("with ids")

	output := buf.String()
	if !strings.Contains(output, `"correlation_id":"corr0001"`) {
		t.Errorf("expected correlation_id in output, got: %s", output)
	}
	if !strings.Contains(output, `"request_id":"req-42"`) {
		t.Errorf("expected request_id in output, got: %s", output)
	}
}

func TestCtx_NoIDs(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	Ctx(context.Background()).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("expected no request_id field, got: %s", buf.String())
	}
}
