// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs the long-lived parts of Reelmatch under suture v4.

The tree has two layers so that cache housekeeping can fail and restart
without touching the listener:

	RootSupervisor ("reelmatch")
	├── CacheSupervisor ("cache-layer")
	│   └── CacheMaintenanceService (when a persistent metadata cache is configured)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (starts, failures, backoff) are logged through sutureslog
onto the zerolog stream via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

Services return ctx.Err() when stopped and any other error to request a
restart. A service that cannot recover should wrap suture.ErrDoNotRestart.

# Thread Safety

AddCacheService and AddAPIService may be called before or after Serve.
*/
package supervisor
