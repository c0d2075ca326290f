// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package models

import "errors"

// ErrVideoNotFound is returned by catalog lookups for unknown video IDs.
var ErrVideoNotFound = errors.New("video not found")
