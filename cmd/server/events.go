// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/sony/gobreaker/v2"

	"github.com/sudanva21/StreamRush2.0/internal/config"
	"github.com/sudanva21/StreamRush2.0/internal/eventprocessor"
	"github.com/sudanva21/StreamRush2.0/internal/logging"
)

// provisionTimeout bounds JetStream stream creation at startup.
const provisionTimeout = 30 * time.Second

// EventComponents is the catalog event pipeline: the HTTP-facing publisher
// and the router applying events to the catalog.
type EventComponents struct {
	Publisher *eventprocessor.Publisher
	Router    *message.Router

	subscriber message.Subscriber
}

// Close releases the transport. The router must have stopped.
func (c *EventComponents) Close() {
	if err := c.Publisher.Close(); err != nil {
		logging.Warn().Err(err).Msg("Error closing event publisher")
	}
	if err := c.subscriber.Close(); err != nil {
		logging.Warn().Err(err).Msg("Error closing event subscriber")
	}
}

// CircuitCheck fails readiness while the publisher's breaker is open.
func (c *EventComponents) CircuitCheck(context.Context) error {
	if c.Publisher.State() == gobreaker.StateOpen {
		return fmt.Errorf("event publisher circuit open")
	}
	return nil
}

// InitEvents builds the event pipeline over NATS JetStream when enabled,
// otherwise over an in-process channel.
func InitEvents(cfg *config.Config, store eventprocessor.CatalogStore) (*EventComponents, error) {
	wmLogger := eventprocessor.NewWatermillLogger(logging.WithComponent("watermill"))

	var (
		pub message.Publisher
		sub message.Subscriber
		err error
	)
	if cfg.NATS.Enabled {
		pub, sub, err = natsTransport(cfg.NATS, wmLogger)
		if err != nil {
			return nil, err
		}
		logging.Info().
			Str("url", cfg.NATS.URL).
			Str("stream", cfg.NATS.StreamName).
			Str("topic", cfg.NATS.Topic).
			Msg("Catalog events over NATS JetStream")
	} else {
		goChannel := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, wmLogger)
		pub, sub = goChannel, goChannel
		logging.Info().Msg("Catalog events over in-process channel (NATS_ENABLED=false)")
	}

	publisher, err := eventprocessor.NewPublisher(pub, eventprocessor.PublisherConfig{
		Topic:              cfg.NATS.Topic,
		BreakerMaxFailures: cfg.NATS.BreakerMaxFailures,
		BreakerTimeout:     cfg.NATS.BreakerTimeout,
	}, logging.WithComponent("event-publisher"))
	if err != nil {
		closeAll(pub, sub)
		return nil, fmt.Errorf("create event publisher: %w", err)
	}

	handler, err := eventprocessor.NewCatalogHandler(store, logging.WithComponent("event-handler"))
	if err != nil {
		closeAll(pub, sub)
		return nil, fmt.Errorf("create catalog handler: %w", err)
	}

	routerCfg := eventprocessor.DefaultRouterConfig()
	routerCfg.Topic = cfg.NATS.Topic
	routerCfg.CloseTimeout = cfg.NATS.CloseTimeout
	routerCfg.MaxRetries = cfg.NATS.MaxRetries
	router, err := eventprocessor.NewRouter(routerCfg, sub, handler, wmLogger)
	if err != nil {
		closeAll(pub, sub)
		return nil, fmt.Errorf("create event router: %w", err)
	}

	return &EventComponents{Publisher: publisher, Router: router, subscriber: sub}, nil
}

func natsTransport(cfg config.NATSConfig, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	ctx, cancel := context.WithTimeout(context.Background(), provisionTimeout)
	defer cancel()
	if err := eventprocessor.ProvisionStream(ctx, cfg); err != nil {
		return nil, nil, fmt.Errorf("provision JetStream stream: %w", err)
	}

	pub, err := eventprocessor.NewNATSPublisher(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create NATS publisher: %w", err)
	}
	sub, err := eventprocessor.NewNATSSubscriber(cfg, logger)
	if err != nil {
		_ = pub.Close()
		return nil, nil, fmt.Errorf("create NATS subscriber: %w", err)
	}
	return pub, sub, nil
}

// closeAll closes the transport on a failed startup. With the in-process
// channel pub and sub are the same value.
func closeAll(pub message.Publisher, sub message.Subscriber) {
	_ = pub.Close()
	if s, ok := sub.(message.Publisher); !ok || s != pub {
		_ = sub.Close()
	}
}
