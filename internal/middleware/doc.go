// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package middleware provides net/http middleware shared by the API:
// request ID propagation, access logging and Prometheus instrumentation.
//
// All middleware has the func(http.Handler) http.Handler shape so it can
// be passed to chi's Use and With directly.
package middleware
