// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

/*
Package supervisor arranges Tableside's long-running components under a
suture v4 supervision tree.

	RootSupervisor ("tableside")
	├── DataSupervisor ("data-layer")
	│   └── store-monitor (periodic MongoDB ping)
	└── APISupervisor ("api-layer")
	    └── http-server

Supervisor events are logged through sutureslog, with the slog handler
backed by the zerolog logger from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddDataService(services.NewStoreMonitorService(store, cfg.Database.HealthInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

A service returning an error is restarted with suture's backoff. Returning
suture.ErrDoNotRestart ends it for good. When ctx is canceled every layer
is stopped within TreeConfig.ShutdownTimeout, and UnstoppedServiceReport
lists anything that overran.
*/
package supervisor
