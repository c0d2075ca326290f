// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/sudanva21/StreamRush2.0/internal/config"
	"github.com/sudanva21/StreamRush2.0/internal/eventprocessor"
	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// Recommender ranks related videos.
type Recommender interface {
	Related(ctx context.Context, videoID, viewerID string, limit int) ([]models.Video, error)
}

// Catalog is the video store used by the handlers.
type Catalog interface {
	GetVideo(ctx context.Context, id string) (*models.Video, error)
	ListCandidates(ctx context.Context, limit int) ([]models.Video, error)
	PutVideo(ctx context.Context, v *models.Video) error
	DeleteVideo(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string, delta int64) (int64, error)
}

// Viewers stores per-viewer state.
type Viewers interface {
	Subscribe(ctx context.Context, viewerID, uploaderID string) error
	Unsubscribe(ctx context.Context, viewerID, uploaderID string) error
	Subscriptions(ctx context.Context, viewerID string) (models.Subscriptions, error)
	AddHistory(ctx context.Context, entry models.HistoryEntry) error
	History(ctx context.Context, viewerID string, limit int) ([]models.HistoryEntry, error)
	Rating(ctx context.Context, viewerID, videoID string) (models.Rating, error)
	Rate(ctx context.Context, viewerID, videoID string, r models.Rating, active bool) (*models.Video, error)
	RatedVideos(ctx context.Context, viewerID string, r models.Rating) ([]string, error)
}

// EventPublisher sends catalog events to the event stream.
type EventPublisher interface {
	Publish(ctx context.Context, e *eventprocessor.CatalogEvent) error
}

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// Handler serves the API endpoints.
type Handler struct {
	recommender Recommender
	catalog     Catalog
	viewers     Viewers
	events      EventPublisher
	checks      map[string]ReadinessCheck
	pageSize    config.APIConfig
	now         func() time.Time
	startTime   time.Time
}

// HandlerDeps are the collaborators of a Handler. Events and Checks are
// optional; without Events catalog writes go straight to the store.
type HandlerDeps struct {
	Recommender Recommender
	Catalog     Catalog
	Viewers     Viewers
	Events      EventPublisher
	Checks      map[string]ReadinessCheck
	API         config.APIConfig
}

// NewHandler creates a Handler.
func NewHandler(deps HandlerDeps) (*Handler, error) {
	if deps.Recommender == nil {
		return nil, fmt.Errorf("recommender required")
	}
	if deps.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if deps.Viewers == nil {
		return nil, fmt.Errorf("viewer store required")
	}
	page := deps.API
	if page.DefaultPageSize <= 0 {
		page.DefaultPageSize = 20
	}
	if page.MaxPageSize < page.DefaultPageSize {
		page.MaxPageSize = page.DefaultPageSize
	}
	return &Handler{
		recommender: deps.Recommender,
		catalog:     deps.Catalog,
		viewers:     deps.Viewers,
		events:      deps.Events,
		checks:      deps.Checks,
		pageSize:    page,
		now:         time.Now,
		startTime:   time.Now(),
	}, nil
}

// capLimit bounds a requested page size by the configured maximum.
func (h *Handler) capLimit(limit int) int {
	if limit > h.pageSize.MaxPageSize {
		return h.pageSize.MaxPageSize
	}
	return limit
}
