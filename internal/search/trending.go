// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package search

import (
	"sort"

	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// MatchesCategory reports whether v belongs to category. An empty category
// or models.CategoryAll matches everything.
func MatchesCategory(v *models.Video, category string) bool {
	if category == "" || category == models.CategoryAll {
		return true
	}
	return v.Category == category
}

// Trending returns the most viewed videos in category, highest first.
// Equal view counts keep their input order. limit <= 0 returns every match.
func Trending(videos []models.Video, category string, limit int) []models.Video {
	out := make([]models.Video, 0, len(videos))
	for i := range videos {
		if MatchesCategory(&videos[i], category) {
			out = append(out, videos[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Views > out[j].Views
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
