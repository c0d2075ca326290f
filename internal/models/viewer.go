// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package models

import "sort"

// Subscriptions is the set of uploader IDs a viewer follows.
// A nil set is valid and empty.
type Subscriptions map[string]struct{}

// NewSubscriptions builds a set from uploader IDs. Empty IDs are skipped.
func NewSubscriptions(uploaderIDs ...string) Subscriptions {
	s := make(Subscriptions, len(uploaderIDs))
	for _, id := range uploaderIDs {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Has reports whether the viewer follows uploaderID.
func (s Subscriptions) Has(uploaderID string) bool {
	_, ok := s[uploaderID]
	return ok
}

// Len returns the number of followed uploaders.
func (s Subscriptions) Len() int {
	return len(s)
}

// IDs returns the followed uploader IDs in ascending order.
func (s Subscriptions) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Rating is a viewer's like or dislike of a video.
type Rating string

// Ratings.
const (
	RatingNone    Rating = "none"
	RatingLike    Rating = "like"
	RatingDislike Rating = "dislike"
)

// Valid reports whether r is one of the known ratings.
func (r Rating) Valid() bool {
	switch r {
	case RatingNone, RatingLike, RatingDislike:
		return true
	}
	return false
}

// Toggle returns the rating after the viewer presses the r button while
// holding current: pressing the active button clears it, pressing the
// other replaces it.
func (r Rating) Toggle(current Rating) Rating {
	if current == r {
		return RatingNone
	}
	return r
}
