// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sudanva21/StreamRush2.0/internal/logging"
	"github.com/sudanva21/StreamRush2.0/internal/metrics"
	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// CatalogSource fetches videos from the catalog.
type CatalogSource interface {
	// GetVideo returns models.ErrVideoNotFound for unknown IDs.
	GetVideo(ctx context.Context, id string) (*models.Video, error)

	// ListCandidates returns up to limit videos; limit <= 0 means all.
	ListCandidates(ctx context.Context, limit int) ([]models.Video, error)
}

// SubscriptionSource fetches a viewer's subscriptions.
type SubscriptionSource interface {
	Subscriptions(ctx context.Context, viewerID string) (models.Subscriptions, error)
}

// Service resolves related videos for a reference video and viewer.
type Service struct {
	config  *Config
	catalog CatalogSource
	subs    SubscriptionSource
	scorer  *Scorer
	logger  zerolog.Logger
}

// NewService creates a related-videos service.
func NewService(cfg *Config, catalog CatalogSource, subs SubscriptionSource, scorer *Scorer, logger zerolog.Logger) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, errors.New("catalog source is required")
	}
	if scorer == nil {
		scorer = NewScorer(nil)
	}

	return &Service{
		config:  cfg,
		catalog: catalog,
		subs:    subs,
		scorer:  scorer,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Related returns videos related to videoID, personalized for viewerID
// when it is non-empty. A limit of zero uses Config.DefaultLimit.
func (s *Service) Related(ctx context.Context, videoID, viewerID string, limit int) ([]models.Video, error) {
	start := time.Now()
	limit = s.config.EffectiveLimit(limit)

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	logger := s.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("video_id", videoID).
		Bool("personalized", viewerID != "").
		Logger()

	reference, err := s.catalog.GetVideo(ctx, videoID)
	if err != nil {
		metrics.RecordRecommendationError()
		return nil, fmt.Errorf("get reference video: %w", err)
	}

	candidates, err := s.catalog.ListCandidates(ctx, s.config.CandidatePoolSize)
	if err != nil {
		metrics.RecordRecommendationError()
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	subs, err := s.viewerSubscriptions(ctx, viewerID)
	if err != nil {
		metrics.RecordRecommendationError()
		return nil, fmt.Errorf("get subscriptions: %w", err)
	}

	related := s.scorer.Rank(reference, candidates, subs, limit)

	metrics.RecordRecommendation(time.Since(start), len(candidates), len(related), viewerID != "")
	logger.Debug().
		Int("candidates", len(candidates)).
		Int("subscriptions", subs.Len()).
		Int("returned", len(related)).
		Dur("latency", time.Since(start)).
		Msg("related videos ranked")

	return related, nil
}

func (s *Service) viewerSubscriptions(ctx context.Context, viewerID string) (models.Subscriptions, error) {
	if viewerID == "" || s.subs == nil {
		return models.Subscriptions{}, nil
	}
	subs, err := s.subs.Subscriptions(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return subs, nil
}
