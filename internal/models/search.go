// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package models

// Sort orders accepted by search.
const (
	SortRelevance  = "relevance"
	SortUploadDate = "upload_date"
	SortViewCount  = "view_count"
	SortRating     = "rating"
)

// Upload date windows accepted by search.
const (
	UploadAny   = "any"
	UploadHour  = "hour"
	UploadToday = "today"
	UploadWeek  = "week"
	UploadMonth = "month"
	UploadYear  = "year"
)

// Duration buckets accepted by search.
const (
	DurationAny    = "any"
	DurationShort  = "short"
	DurationMedium = "medium"
	DurationLong   = "long"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// SearchFilters is the filter selection from the search page.
// Zero values behave like "any" / relevance.
type SearchFilters struct {
	SortBy     string `json:"sortBy" validate:"omitempty,oneof=relevance upload_date view_count rating"`
	UploadDate string `json:"uploadDate" validate:"omitempty,oneof=any hour today week month year"`
	Duration   string `json:"duration" validate:"omitempty,oneof=any short medium long"`
	Category   string `json:"category" validate:"max=64"`
}

// DefaultSearchFilters returns relevance ordering with no filtering.
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		SortBy:     SortRelevance,
		UploadDate: UploadAny,
		Duration:   DurationAny,
		Category:   CategoryAll,
	}
}
