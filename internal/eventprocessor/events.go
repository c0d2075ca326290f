// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package eventprocessor

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// DefaultTopic is the subject catalog events are published on.
const DefaultTopic = "streamrush.catalog"

// Event types.
const (
	EventVideoUpserted = "video.upserted"
	EventVideoDeleted  = "video.deleted"
	EventVideoViewed   = "video.viewed"
	EventVideoLiked    = "video.liked"
	EventVideoDisliked = "video.disliked"
)

// MetadataEventType is the message metadata key holding the event type.
const MetadataEventType = "event_type"

// ErrInvalidEvent is returned for payloads that can never be applied.
var ErrInvalidEvent = errors.New("invalid catalog event")

// CatalogEvent is the envelope for every message on the catalog topic.
// Video is set for upserts; VideoID and Delta for deletes and views.
// Likes and dislikes carry VideoID, ViewerID and Active: true sets the
// viewer's rating, false withdraws it.
type CatalogEvent struct {
	EventID    string        `json:"event_id"`
	Type       string        `json:"type"`
	OccurredAt time.Time     `json:"occurred_at"`
	Video      *models.Video `json:"video,omitempty"`
	VideoID    string        `json:"video_id,omitempty"`
	Delta      int64         `json:"delta,omitempty"`
	ViewerID   string        `json:"viewer_id,omitempty"`
	Active     bool          `json:"active,omitempty"`
}

func newEvent(eventType string) *CatalogEvent {
	return &CatalogEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}

// NewVideoUpserted returns an event that creates or replaces v.
func NewVideoUpserted(v *models.Video) *CatalogEvent {
	e := newEvent(EventVideoUpserted)
	e.Video = v
	if v != nil {
		e.VideoID = v.ID
	}
	return e
}

// NewVideoDeleted returns an event that removes a video.
func NewVideoDeleted(videoID string) *CatalogEvent {
	e := newEvent(EventVideoDeleted)
	e.VideoID = videoID
	return e
}

// NewVideoViewed returns an event that adds delta to a video's views.
func NewVideoViewed(videoID string, delta int64) *CatalogEvent {
	e := newEvent(EventVideoViewed)
	e.VideoID = videoID
	e.Delta = delta
	return e
}

// NewVideoRated returns a video.liked or video.disliked event for r.
// active sets the viewer's rating to r; false withdraws it.
func NewVideoRated(videoID, viewerID string, r models.Rating, active bool) *CatalogEvent {
	eventType := EventVideoLiked
	if r == models.RatingDislike {
		eventType = EventVideoDisliked
	}
	e := newEvent(eventType)
	e.VideoID = videoID
	e.ViewerID = viewerID
	e.Active = active
	return e
}

// Rating returns the rating a like or dislike event applies.
func (e *CatalogEvent) Rating() models.Rating {
	switch e.Type {
	case EventVideoLiked:
		return models.RatingLike
	case EventVideoDisliked:
		return models.RatingDislike
	}
	return models.RatingNone
}

// Validate checks the fields each event type needs.
func (e *CatalogEvent) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("%w: missing event_id", ErrInvalidEvent)
	}
	switch e.Type {
	case EventVideoUpserted:
		if e.Video == nil || e.Video.ID == "" {
			return fmt.Errorf("%w: %s without video", ErrInvalidEvent, e.Type)
		}
	case EventVideoDeleted:
		if e.VideoID == "" {
			return fmt.Errorf("%w: %s without video_id", ErrInvalidEvent, e.Type)
		}
	case EventVideoViewed:
		if e.VideoID == "" {
			return fmt.Errorf("%w: %s without video_id", ErrInvalidEvent, e.Type)
		}
		if e.Delta == 0 {
			return fmt.Errorf("%w: %s with zero delta", ErrInvalidEvent, e.Type)
		}
	case EventVideoLiked, EventVideoDisliked:
		if e.VideoID == "" || e.ViewerID == "" {
			return fmt.Errorf("%w: %s needs video_id and viewer_id", ErrInvalidEvent, e.Type)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	return nil
}

// MarshalEvent validates and encodes an event.
func MarshalEvent(e *CatalogEvent) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil event", ErrInvalidEvent)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(e)
}

// UnmarshalEvent decodes and validates an event payload.
func UnmarshalEvent(data []byte) (*CatalogEvent, error) {
	var e CatalogEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}
