// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package services adapts StreamRush components to suture.Service.
//
// Every wrapper blocks in Serve until its context is canceled, stops its
// component, and implements fmt.Stringer so supervisor logs name it.
package services
