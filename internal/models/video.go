// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package models

import "time"

// Video is a catalog record for an uploaded video.
type Video struct {
	ID           string    `json:"id" validate:"required,max=128"`
	Title        string    `json:"title" validate:"max=300"`
	Description  string    `json:"description,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Duration     float64   `json:"duration"` // seconds
	Views        int64     `json:"views" validate:"gte=0"`
	Likes        int64     `json:"likes" validate:"gte=0"`
	Dislikes     int64     `json:"dislikes" validate:"gte=0"`
	UploaderID   string    `json:"uploaderId" validate:"required"`
	UploaderName string    `json:"uploaderName,omitempty"`
	Tags         []string  `json:"tags"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AgeDays returns the fractional number of days between the video's
// creation and now. Videos created in the future report a negative age.
func (v *Video) AgeDays(now time.Time) float64 {
	return now.Sub(v.CreatedAt).Hours() / 24
}

// HistoryEntry records one video watched by a viewer.
type HistoryEntry struct {
	ViewerID    string    `json:"userId"`
	VideoID     string    `json:"videoId"`
	Title       string    `json:"title"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	ChannelName string    `json:"channelName,omitempty"`
	WatchedAt   time.Time `json:"watchedAt"`
}

// NewHistoryEntry builds a history row for the given video.
func NewHistoryEntry(viewerID string, v *Video, watchedAt time.Time) HistoryEntry {
	return HistoryEntry{
		ViewerID:    viewerID,
		VideoID:     v.ID,
		Title:       v.Title,
		Thumbnail:   v.ThumbnailURL,
		ChannelName: v.UploaderName,
		WatchedAt:   watchedAt,
	}
}
