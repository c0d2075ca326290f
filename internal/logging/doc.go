// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package logging provides the process-wide zerolog logger for StreamRush.
//
// Initialize once from main with values from the config package:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//
// Log through the package helpers or a component logger:
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logger := logging.WithComponent("catalog")
//
// Request-scoped fields (request_id) travel in the context:
//
//	logging.Ctx(ctx).Warn().Err(err).Msg("subscription lookup failed")
//
// Libraries that want a *slog.Logger (sutureslog) get one through
// NewSlogLogger, which writes into the same zerolog output.
//
// Always terminate event chains with Msg or Send; an unterminated event
// is never written.
package logging
