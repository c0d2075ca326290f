// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package auth resolves the viewer behind a request.
//
// Identity is issued upstream; this service only validates HS256 bearer
// tokens carrying a viewer_id claim. Anonymous requests are allowed on
// read paths and receive unpersonalized results.
package auth
