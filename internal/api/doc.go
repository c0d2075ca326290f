// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package api exposes the discovery service over HTTP.
//
// Routes are served by chi and every JSON body uses the APIResponse
// envelope. Read endpoints accept anonymous viewers; endpoints that act on
// behalf of a viewer (subscriptions, history, uploads) require a bearer
// token. Writes to the catalog go through the event publisher when one is
// configured, so every instance converges through the same event stream.
package api
