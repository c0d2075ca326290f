// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// ErrRouterNotRunning is returned by Ready before the router has started
// or after it closed.
var ErrRouterNotRunning = errors.New("event router not running")

// EventRouter is the lifecycle of a watermill *message.Router.
type EventRouter interface {
	Run(ctx context.Context) error
	Running() chan struct{}
	IsClosed() bool
}

// EventRouterService runs the catalog event router. A watermill router
// cannot be started twice, so once it stops on its own the service asks
// the supervisor not to restart it.
type EventRouterService struct {
	router EventRouter
	logger zerolog.Logger
	name   string
}

// NewEventRouterService wraps router.
func NewEventRouterService(router EventRouter, logger zerolog.Logger) *EventRouterService {
	return &EventRouterService{
		router: router,
		logger: logger.With().Str("component", "event-router").Logger(),
		name:   "event-router",
	}
}

// Serve implements suture.Service. The router closes itself when ctx is
// canceled.
func (s *EventRouterService) Serve(ctx context.Context) error {
	err := s.router.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("event router failed")
	} else {
		s.logger.Warn().Msg("event router stopped unexpectedly")
	}
	return suture.ErrDoNotRestart
}

// Ready reports whether the router is consuming events. It is used as a
// readiness check.
func (s *EventRouterService) Ready(context.Context) error {
	if s.router.IsClosed() {
		return ErrRouterNotRunning
	}
	select {
	case <-s.router.Running():
		return nil
	default:
		return ErrRouterNotRunning
	}
}

func (s *EventRouterService) String() string {
	return s.name
}
