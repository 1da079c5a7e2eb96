// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package services adapts Reelmatch components to suture.Service.
//
// HTTPServerService turns the blocking ListenAndServe and Shutdown pair into
// a context-driven Serve. CacheMaintenanceService runs periodic metadata
// cache housekeeping. Both return ctx.Err() on a requested stop so suture
// does not count shutdown as a failure.
package services
