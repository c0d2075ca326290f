// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/sudanva21/StreamRush2.0/internal/metrics"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// PublisherConfig controls the publish topic and circuit breaker.
type PublisherConfig struct {
	Topic string

	// BreakerMaxFailures consecutive failures open the breaker.
	BreakerMaxFailures uint32

	// BreakerTimeout is how long the breaker stays open before probing.
	BreakerTimeout time.Duration
}

// DefaultPublisherConfig returns production defaults.
func DefaultPublisherConfig() PublisherConfig {
	return PublisherConfig{
		Topic:              DefaultTopic,
		BreakerMaxFailures: 5,
		BreakerTimeout:     30 * time.Second,
	}
}

// Publisher sends catalog events through a watermill publisher behind a
// circuit breaker. It is safe for concurrent use.
type Publisher struct {
	publisher message.Publisher
	breaker   *gobreaker.CircuitBreaker[interface{}]
	topic     string
	logger    zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewPublisher wraps pub. The Publisher owns pub and closes it on Close.
func NewPublisher(pub message.Publisher, cfg PublisherConfig, logger zerolog.Logger) (*Publisher, error) {
	if pub == nil {
		return nil, fmt.Errorf("watermill publisher required")
	}
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = DefaultPublisherConfig().BreakerMaxFailures
	}

	p := &Publisher{
		publisher: pub,
		topic:     cfg.Topic,
		logger:    logger,
	}
	p.breaker = gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:    "catalog-events",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetEventsCircuitState(int(to))
			p.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("event publisher circuit breaker changed state")
		},
	})
	metrics.SetEventsCircuitState(int(gobreaker.StateClosed))

	return p, nil
}

// Topic returns the topic events are published on.
func (p *Publisher) Topic() string {
	return p.topic
}

// State reports the circuit breaker state.
func (p *Publisher) State() gobreaker.State {
	return p.breaker.State()
}

// Publish encodes and sends e. The event id doubles as the message UUID
// and the JetStream deduplication id.
func (p *Publisher) Publish(ctx context.Context, e *CatalogEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	data, err := MarshalEvent(e)
	if err != nil {
		metrics.RecordEventPublishFailure("invalid")
		return err
	}

	msg := message.NewMessage(e.EventID, data)
	msg.Metadata.Set(MetadataEventType, e.Type)
	msg.Metadata.Set(natsgo.MsgIdHdr, e.EventID)
	msg.SetContext(ctx)

	_, err = p.breaker.Execute(func() (interface{}, error) {
		return nil, p.publisher.Publish(p.topic, msg)
	})
	if err != nil {
		reason := "transport"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			reason = "circuit_open"
		}
		metrics.RecordEventPublishFailure(reason)
		return fmt.Errorf("publish %s event: %w", e.Type, err)
	}

	metrics.RecordEventPublished(e.Type)
	p.logger.Debug().
		Str("event_id", e.EventID).
		Str("event_type", e.Type).
		Str("video_id", e.VideoID).
		Msg("catalog event published")
	return nil
}

// Close closes the underlying publisher. Repeated calls are no-ops.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.publisher.Close()
}
