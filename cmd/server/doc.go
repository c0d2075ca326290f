// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package main is the StreamRush discovery server.
//
// It serves the related-videos, trending, search, subscription and watch
// history API over HTTP, keeps the catalog in BadgerDB, and applies catalog
// writes from an event stream: NATS JetStream when NATS_ENABLED=true,
// otherwise an in-process channel.
//
// Startup order:
//
//  1. Configuration (koanf: defaults, config.yaml, environment)
//  2. Logging
//  3. Catalog store
//  4. Event transport, publisher and consumer router
//  5. Related-videos service
//  6. Authentication
//  7. HTTP router
//  8. Supervisor tree (catalog GC, event router, HTTP server)
//
// SIGINT and SIGTERM cancel the tree; each service drains within
// HTTP_SHUTDOWN_TIMEOUT.
//
// Development:
//
//	export AUTH_MODE=none
//	export CATALOG_IN_MEMORY=true
//	./streamrush
//
// Production:
//
//	export JWT_SECRET=$(openssl rand -base64 32)
//	export CATALOG_PATH=/data/catalog
//	export NATS_ENABLED=true
//	export NATS_URL=nats://nats:4222
//	./streamrush
package main
