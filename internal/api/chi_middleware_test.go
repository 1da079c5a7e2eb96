// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/reelmatch/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewChiMiddlewareConfig(t *testing.T) {
	t.Parallel()

	mc := NewChiMiddlewareConfig(&config.SecurityConfig{
		CORSOrigins:       []string{"https://a.example"},
		RateLimitReqs:     42,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
	})

	if len(mc.CORSAllowedOrigins) != 1 || mc.CORSAllowedOrigins[0] != "https://a.example" {
		t.Errorf("CORSAllowedOrigins = %v", mc.CORSAllowedOrigins)
	}
	if mc.RateLimitRequests != 42 || mc.RateLimitWindow != 30*time.Second || !mc.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", mc.RateLimitRequests, mc.RateLimitWindow, mc.RateLimitDisabled)
	}
	if len(mc.CORSAllowedMethods) == 0 {
		t.Error("methods should keep defaults")
	}
}

func TestCORSRefusesWithoutOrigins(t *testing.T) {
	t.Parallel()

	handler := NewChiMiddleware(nil).CORS()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want none without configured origins", got)
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(okHandler())
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS should not be set over plain HTTP, got %q", got)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Avatar", "Avatar"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"Amélie", "Amélie"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
