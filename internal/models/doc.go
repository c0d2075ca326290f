// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

/*
Package models defines the data structures shared across StreamRush services.

Key Components:

  - Video: catalog record for an uploaded video
  - Subscriptions: the set of uploader IDs a viewer follows
  - HistoryEntry: one watch-history row for a viewer
  - SearchFilters: search page filter selection (sort, upload date, duration, category)

Models carry JSON tags matching the field names used by the web client
(camelCase), so catalog payloads and API responses share one shape.
*/
package models
