// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package eventprocessor

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/sudanva21/StreamRush2.0/internal/catalog"
	"github.com/sudanva21/StreamRush2.0/internal/metrics"
	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// Consume results recorded in metrics.
const (
	resultApplied   = "applied"
	resultMalformed = "malformed"
	resultRejected  = "rejected"
	resultSkipped   = "skipped"
	resultFailed    = "failed"
)

// CatalogStore is the write side of the catalog used by CatalogHandler.
type CatalogStore interface {
	PutVideo(ctx context.Context, v *models.Video) error
	DeleteVideo(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string, delta int64) (int64, error)
	Rate(ctx context.Context, viewerID, videoID string, r models.Rating, active bool) (*models.Video, error)
}

// CatalogHandler applies catalog events to a store.
//
// Payloads that can never succeed (bad JSON, unknown type, invalid video,
// views for a missing video) are logged and acked. Store failures are
// returned so the router retries them.
type CatalogHandler struct {
	store  CatalogStore
	logger zerolog.Logger
}

// NewCatalogHandler creates a handler writing to store.
func NewCatalogHandler(store CatalogStore, logger zerolog.Logger) (*CatalogHandler, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	return &CatalogHandler{store: store, logger: logger}, nil
}

// Handle is a watermill NoPublishHandlerFunc.
func (h *CatalogHandler) Handle(msg *message.Message) error {
	event, err := UnmarshalEvent(msg.Payload)
	if err != nil {
		metrics.RecordEventConsumed(msg.Metadata.Get(MetadataEventType), resultMalformed)
		h.logger.Warn().
			Err(err).
			Str("message_uuid", msg.UUID).
			Msg("dropping malformed catalog event")
		return nil
	}

	result, err := h.apply(msg.Context(), event)
	metrics.RecordEventConsumed(event.Type, result)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("event_id", event.EventID).
			Str("event_type", event.Type).
			Msg("catalog event failed")
		return err
	}

	h.logger.Debug().
		Str("event_id", event.EventID).
		Str("event_type", event.Type).
		Str("video_id", event.VideoID).
		Str("result", result).
		Msg("catalog event handled")
	return nil
}

func (h *CatalogHandler) apply(ctx context.Context, e *CatalogEvent) (string, error) {
	switch e.Type {
	case EventVideoUpserted:
		err := h.store.PutVideo(ctx, e.Video)
		if errors.Is(err, catalog.ErrInvalidVideo) {
			h.logger.Warn().Err(err).Str("event_id", e.EventID).Msg("rejecting invalid video")
			return resultRejected, nil
		}
		if err != nil {
			return resultFailed, fmt.Errorf("upsert video %s: %w", e.Video.ID, err)
		}
	case EventVideoDeleted:
		if err := h.store.DeleteVideo(ctx, e.VideoID); err != nil {
			return resultFailed, fmt.Errorf("delete video %s: %w", e.VideoID, err)
		}
	case EventVideoViewed:
		_, err := h.store.IncrementViews(ctx, e.VideoID, e.Delta)
		if errors.Is(err, models.ErrVideoNotFound) {
			return resultSkipped, nil
		}
		if err != nil {
			return resultFailed, fmt.Errorf("increment views %s: %w", e.VideoID, err)
		}
	case EventVideoLiked, EventVideoDisliked:
		_, err := h.store.Rate(ctx, e.ViewerID, e.VideoID, e.Rating(), e.Active)
		switch {
		case errors.Is(err, models.ErrVideoNotFound):
			return resultSkipped, nil
		case errors.Is(err, catalog.ErrInvalidID), errors.Is(err, catalog.ErrInvalidRating):
			h.logger.Warn().Err(err).Str("event_id", e.EventID).Msg("rejecting invalid rating")
			return resultRejected, nil
		case err != nil:
			return resultFailed, fmt.Errorf("rate video %s: %w", e.VideoID, err)
		}
	}
	return resultApplied, nil
}
