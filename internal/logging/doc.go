// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides zerolog-based structured logging for Reelmatch.
//
// A single global logger is configured once at startup and shared by every
// package. JSON output is the default; console output is available for local
// development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("movies_path", path).Int("movies", n).Msg("Catalog loaded")
//	logging.Error().Err(err).Int("movie_id", id).Msg("Metadata fetch failed")
//
// # Context
//
// HTTP middleware stores a request ID and a correlation ID on the request
// context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Str("title", title).Msg("Title not found")
//
// # slog
//
// The supervisor tree logs through thejerf/sutureslog, which needs a
// *slog.Logger. NewSlogLogger returns one backed by this package.
//
// # Configuration
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json, console (default: json)
//	LOG_CALLER  include caller file:line (default: false)
package logging
