// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package search

import (
	"sort"
	"strings"
	"time"

	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// Relevance weights for a query hit in each field.
const (
	TitleHitWeight       = 3
	TagHitWeight         = 2
	DescriptionHitWeight = 1
)

// Duration bucket edges, in seconds.
const (
	ShortMaxSeconds  = 4 * 60
	MediumMaxSeconds = 20 * 60
)

// uploadWindows maps an upload-date filter to its maximum video age.
var uploadWindows = map[string]time.Duration{
	models.UploadHour:  time.Hour,
	models.UploadToday: 24 * time.Hour,
	models.UploadWeek:  7 * 24 * time.Hour,
	models.UploadMonth: 30 * 24 * time.Hour,
	models.UploadYear:  365 * 24 * time.Hour,
}

type hit struct {
	video     models.Video
	relevance int
}

// Search filters videos by query and filters and orders the survivors by
// filters.SortBy. now anchors the upload-date window. Unset filter fields
// behave like their "any" value and an unknown sort falls back to
// relevance.
func Search(videos []models.Video, query string, filters models.SearchFilters, now time.Time) []models.Video {
	q := strings.ToLower(strings.TrimSpace(query))

	hits := make([]hit, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		rel, ok := Relevance(v, q)
		if !ok {
			continue
		}
		if !withinUploadWindow(v, filters.UploadDate, now) {
			continue
		}
		if !InDurationBucket(v.Duration, filters.Duration) {
			continue
		}
		if !MatchesCategory(v, filters.Category) {
			continue
		}
		hits = append(hits, hit{video: *v, relevance: rel})
	}

	sort.SliceStable(hits, lessFor(filters.SortBy, hits))

	out := make([]models.Video, len(hits))
	for i := range hits {
		out[i] = hits[i].video
	}
	return out
}

// Relevance scores v against an already lowercased query. The boolean is
// false when no field contains the query. An empty query matches with a
// score of zero.
func Relevance(v *models.Video, lowerQuery string) (int, bool) {
	if lowerQuery == "" {
		return 0, true
	}

	score := 0
	if strings.Contains(strings.ToLower(v.Title), lowerQuery) {
		score += TitleHitWeight
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			score += TagHitWeight
			break
		}
	}
	if strings.Contains(strings.ToLower(v.Description), lowerQuery) {
		score += DescriptionHitWeight
	}
	return score, score > 0
}

// InDurationBucket reports whether a duration in seconds falls in bucket.
func InDurationBucket(seconds float64, bucket string) bool {
	switch bucket {
	case models.DurationShort:
		return seconds < ShortMaxSeconds
	case models.DurationMedium:
		return seconds >= ShortMaxSeconds && seconds <= MediumMaxSeconds
	case models.DurationLong:
		return seconds > MediumMaxSeconds
	default:
		return true
	}
}

func withinUploadWindow(v *models.Video, window string, now time.Time) bool {
	maxAge, ok := uploadWindows[window]
	if !ok {
		return true
	}
	return now.Sub(v.CreatedAt) <= maxAge
}

func lessFor(sortBy string, hits []hit) func(i, j int) bool {
	switch sortBy {
	case models.SortUploadDate:
		return func(i, j int) bool {
			return hits[i].video.CreatedAt.After(hits[j].video.CreatedAt)
		}
	case models.SortViewCount:
		return func(i, j int) bool {
			return hits[i].video.Views > hits[j].video.Views
		}
	case models.SortRating:
		return func(i, j int) bool {
			a, b := &hits[i].video, &hits[j].video
			if a.Likes != b.Likes {
				return a.Likes > b.Likes
			}
			return a.Likes-a.Dislikes > b.Likes-b.Dislikes
		}
	default:
		return func(i, j int) bool {
			return hits[i].relevance > hits[j].relevance
		}
	}
}
