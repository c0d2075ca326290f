// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

/*
Package supervisor runs the long-lived StreamRush services under a suture v4
supervisor tree.

	RootSupervisor ("streamrush")
	├── DataSupervisor ("data-layer")
	│   └── CatalogGCService
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventRouterService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer restarts its own services. A failing event consumer does not take
the HTTP server down, and the HTTP server keeps answering reads while the
catalog runs garbage collection.

Supervisor events are logged through sutureslog into the zerolog backend:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCatalogGCService(store, cfg.Catalog.GCInterval, logger))
	tree.AddMessagingService(services.NewEventRouterService(router, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

The service wrappers live in the services subpackage.
*/
package supervisor
