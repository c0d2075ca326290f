// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// HandlerName identifies the catalog handler in router logs.
const HandlerName = "catalog-events"

// RouterConfig holds configuration for the event router.
type RouterConfig struct {
	Topic        string
	CloseTimeout time.Duration

	MaxRetries           int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
}

// DefaultRouterConfig returns production defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		Topic:                DefaultTopic,
		CloseTimeout:         10 * time.Second,
		MaxRetries:           3,
		RetryInitialInterval: 500 * time.Millisecond,
		RetryMaxInterval:     10 * time.Second,
	}
}

// NewRouter builds a watermill router feeding messages from sub into
// handler. Middleware order, outermost first: panic recovery, retry with
// exponential backoff.
func NewRouter(cfg RouterConfig, sub message.Subscriber, handler *CatalogHandler, logger watermill.LoggerAdapter) (*message.Router, error) {
	if sub == nil {
		return nil, fmt.Errorf("subscriber required")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	router.AddMiddleware(
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      cfg.MaxRetries,
			InitialInterval: cfg.RetryInitialInterval,
			MaxInterval:     cfg.RetryMaxInterval,
			Multiplier:      2,
			Logger:          logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(HandlerName, cfg.Topic, sub, handler.Handle)
	return router, nil
}
