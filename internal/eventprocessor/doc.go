// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package eventprocessor carries catalog changes between services.
//
// Upstream services (upload, moderation, view counters) publish
// CatalogEvent messages on the catalog topic. This package provides:
//
//   - the event envelope and its JSON codec
//   - a Publisher that guards the transport with a circuit breaker
//   - NATS JetStream publisher and subscriber constructors
//   - a CatalogHandler that applies events to the local catalog store
//   - a watermill Router with recovery and retry middleware
//
// When NATS is disabled the same handler runs over an in-process
// GoChannel pub/sub, so the write path is identical in both modes.
package eventprocessor
