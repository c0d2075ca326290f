// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// GarbageCollector reclaims catalog storage.
type GarbageCollector interface {
	RunGC() error
}

// CatalogGCService runs catalog garbage collection on a fixed interval.
// Failures are logged and retried on the next tick.
type CatalogGCService struct {
	gc       GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCatalogGCService creates the service. A non-positive interval
// disables collection; Serve then only waits for cancellation.
func NewCatalogGCService(gc GarbageCollector, interval time.Duration, logger zerolog.Logger) *CatalogGCService {
	return &CatalogGCService{
		gc:       gc,
		interval: interval,
		logger:   logger.With().Str("component", "catalog-gc").Logger(),
		name:     "catalog-gc",
	}
}

// Serve implements suture.Service.
func (s *CatalogGCService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.gc.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("catalog GC failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("catalog GC complete")
		}
	}
}

func (s *CatalogGCService) String() string {
	return s.name
}
