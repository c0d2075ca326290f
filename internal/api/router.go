// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sudanva21/StreamRush2.0/internal/middleware"
)

// ViewerMiddleware resolves and enforces viewer identity.
type ViewerMiddleware interface {
	OptionalViewer(next http.Handler) http.Handler
	RequireViewer(next http.Handler) http.Handler
}

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	viewers       ViewerMiddleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, viewers ViewerMiddleware, chiMW *ChiMiddleware) *Router {
	return &Router{handler: handler, viewers: viewers, chiMiddleware: chiMW}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(5, "application/json"))
		r.Use(router.viewers.OptionalViewer)

		r.Get("/videos/{id}", router.handler.GetVideo)
		r.Get("/videos/{id}/related", router.handler.Related)
		r.Post("/videos/{id}/views", router.handler.RecordView)
		r.Get("/trending", router.handler.Trending)
		r.Get("/search", router.handler.Search)

		r.Group(func(r chi.Router) {
			r.Use(router.viewers.RequireViewer)

			r.Put("/videos/{id}", router.handler.PutVideo)
			r.Delete("/videos/{id}", router.handler.DeleteVideo)
			r.Post("/videos/{id}/like", router.handler.Like)
			r.Post("/videos/{id}/dislike", router.handler.Dislike)
			r.Get("/ratings", router.handler.RatedVideos)
			r.Get("/subscriptions", router.handler.ListSubscriptions)
			r.Put("/subscriptions/{uploaderId}", router.handler.Subscribe)
			r.Delete("/subscriptions/{uploaderId}", router.handler.Unsubscribe)
			r.Get("/history", router.handler.History)
		})
	})

	return r
}
