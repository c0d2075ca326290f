// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package search implements catalog browsing outside the related-videos
// path: the trending list and filtered keyword search.
//
// Both operations are pure functions over a candidate slice. They never
// mutate their input and always return a fresh, non-nil slice, so callers
// can hand results directly to the JSON encoder.
package search
