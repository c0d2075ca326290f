// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

// Package recommend ranks related videos for the watch page.
//
// # Scoring
//
// Each candidate is scored against the reference video with fixed weights:
//
//   - +50 same category (case-sensitive)
//   - +30 same uploader
//   - +20 per candidate tag that fuzzily matches any reference tag
//   - +5*log10(views+1) and +3*log10(likes+1)
//   - +10 if younger than 7 days, else +5 if younger than 30 days
//   - +25 if the viewer subscribes to the uploader
//
// Candidates are sorted by descending score with a stable sort, so equal
// scores keep their input order. The reference video is never returned.
//
// Tag matching lowercases both tags and accepts containment in either
// direction. Very short tags therefore match broadly ("a" matches "jazz").
// This is kept for compatibility with the web client's ranking.
//
// # Usage
//
//	scorer := recommend.NewScorer(time.Now)
//	related := scorer.Rank(&current, pool, subs, recommend.DefaultLimit)
//
// Service wraps the scorer with catalog and subscription lookups:
//
//	svc, err := recommend.NewService(cfg, store, store, scorer, logger)
//	videos, err := svc.Related(ctx, videoID, viewerID, 0)
//
// # Thread Safety
//
// Rank never mutates its inputs and keeps no shared state. Scorer and
// Service are safe for concurrent use.
package recommend
