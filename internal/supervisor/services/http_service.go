// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sudanva21/StreamRush2.0/internal/logging"
)

// defaultDrainTimeout applies when NewHTTPServerService gets no timeout.
const defaultDrainTimeout = 10 * time.Second

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs the StreamRush API server under the api-layer
// supervisor. When its context ends it stops accepting connections and
// lets in-flight requests finish for up to drainTimeout.
type HTTPServerService struct {
	server       HTTPServer
	listener     net.Listener
	drainTimeout time.Duration
	name         string
}

// NewHTTPServerService wraps server. A non-positive drainTimeout means
// 10 seconds.
func NewHTTPServerService(server HTTPServer, drainTimeout time.Duration) *HTTPServerService {
	if drainTimeout <= 0 {
		drainTimeout = defaultDrainTimeout
	}
	return &HTTPServerService{
		server:       server,
		drainTimeout: drainTimeout,
		name:         "http-server",
	}
}

// WithListener serves on ln instead of binding the server's Addr. The
// server closes ln on shutdown, so a restarted service cannot reuse it.
func (h *HTTPServerService) WithListener(ln net.Listener) *HTTPServerService {
	h.listener = ln
	return h
}

// addr is the address the service accepts on, for logging.
func (h *HTTPServerService) addr() string {
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	if srv, ok := h.server.(*http.Server); ok {
		return srv.Addr
	}
	return ""
}

func (h *HTTPServerService) listen() error {
	if h.listener != nil {
		return h.server.Serve(h.listener)
	}
	return h.server.ListenAndServe()
}

// Serve implements suture.Service. A listen failure is returned so the
// supervisor restarts the service; a drained shutdown returns ctx.Err().
func (h *HTTPServerService) Serve(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		err := h.listen()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()

	logging.Info().Str("addr", h.addr()).Msg("API server accepting connections")

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("api server %s: %w", h.addr(), err)
		}
		return nil
	case <-ctx.Done():
	}

	start := time.Now()
	drainCtx, cancel := context.WithTimeout(context.Background(), h.drainTimeout)
	defer cancel()
	if err := h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("drain api server: %w", err)
	}
	<-done
	logging.Info().
		Dur("drain_duration", time.Since(start)).
		Msg("API server drained")
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return h.name
}
