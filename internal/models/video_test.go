// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package models

import (
	"testing"
	"time"
)

func TestVideo_AgeDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		created time.Time
		want    float64
	}{
		{"same instant", now, 0},
		{"two days", now.Add(-48 * time.Hour), 2},
		{"half day", now.Add(-12 * time.Hour), 0.5},
		{"future", now.Add(24 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := Video{CreatedAt: tt.created}
			if got := v.AgeDays(now); got != tt.want {
				t.Errorf("AgeDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewHistoryEntry(t *testing.T) {
	t.Parallel()

	watched := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	v := &Video{ID: "v1", Title: "Live at the Hall", ThumbnailURL: "thumb.jpg", UploaderName: "Band"}

	h := NewHistoryEntry("viewer-1", v, watched)
	if h.ViewerID != "viewer-1" || h.VideoID != "v1" {
		t.Errorf("ids = (%q, %q), want (viewer-1, v1)", h.ViewerID, h.VideoID)
	}
	if h.Title != v.Title || h.Thumbnail != v.ThumbnailURL || h.ChannelName != v.UploaderName {
		t.Errorf("unexpected denormalized fields: %+v", h)
	}
	if !h.WatchedAt.Equal(watched) {
		t.Errorf("WatchedAt = %v, want %v", h.WatchedAt, watched)
	}
}

func TestSubscriptions(t *testing.T) {
	t.Parallel()

	s := NewSubscriptions("U1", "", "U2", "U1")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has("U1") || !s.Has("U2") {
		t.Error("expected U1 and U2 to be subscribed")
	}
	if s.Has("") || s.Has("U3") {
		t.Error("unexpected membership")
	}

	var empty Subscriptions
	if empty.Has("U1") {
		t.Error("nil set should be empty")
	}
	if empty.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", empty.Len())
	}
	if ids := empty.IDs(); ids == nil || len(ids) != 0 {
		t.Errorf("nil IDs() = %v, want empty", ids)
	}

	ids := NewSubscriptions("U9", "U1", "U5").IDs()
	if len(ids) != 3 || ids[0] != "U1" || ids[1] != "U5" || ids[2] != "U9" {
		t.Errorf("IDs() = %v, want sorted", ids)
	}
}

func TestRating_Toggle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		press, current, want Rating
	}{
		{RatingLike, RatingNone, RatingLike},
		{RatingLike, RatingLike, RatingNone},
		{RatingLike, RatingDislike, RatingLike},
		{RatingDislike, RatingNone, RatingDislike},
		{RatingDislike, RatingDislike, RatingNone},
		{RatingDislike, RatingLike, RatingDislike},
	}
	for _, tt := range tests {
		if got := tt.press.Toggle(tt.current); got != tt.want {
			t.Errorf("%s.Toggle(%s) = %s, want %s", tt.press, tt.current, got, tt.want)
		}
	}

	if Rating("love").Valid() || !RatingNone.Valid() {
		t.Error("Valid() mismatch")
	}
}
