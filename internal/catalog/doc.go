// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package catalog stores videos and viewer state in BadgerDB.
//
// Store implements the narrow lookups the related-videos service needs
// (GetVideo, ListCandidates, Subscriptions) plus the writes driven by
// catalog events and the watch page (PutVideo, IncrementViews, Subscribe,
// AddHistory).
//
// # Key Layout
//
//	video:<id>                               JSON models.Video
//	sub:<viewer>:<uploader>                  empty value
//	history:<viewer>:<inverted-ts>:<video>   JSON models.HistoryEntry
//
// History timestamps are stored inverted (MaxInt64 - unix nanos, hex) so a
// forward prefix scan returns the newest entries first.
//
// Values are encoded with goccy/go-json.
package catalog
