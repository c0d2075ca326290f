// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "streamrush"

var (
	// HTTP API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Duration of API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Number of API requests currently being served",
		},
	)

	// Related videos
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_requests_total",
			Help:      "Total number of related-video rankings served",
		},
		[]string{"personalized"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_duration_seconds",
			Help:      "Time to fetch inputs and rank related videos",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_candidates",
			Help:      "Candidate pool size per ranking",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_results",
			Help:      "Number of related videos returned per ranking",
			Buckets:   []float64{0, 1, 5, 10, 15, 25, 50},
		},
	)

	RecommendErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_errors_total",
			Help:      "Rankings that failed while fetching inputs",
		},
	)

	// Catalog store
	CatalogOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_operation_duration_seconds",
			Help:      "Duration of catalog store operations",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"},
	)

	CatalogOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_operation_errors_total",
			Help:      "Catalog store operations that returned an error",
		},
		[]string{"operation"},
	)

	// Catalog events
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Catalog events published",
		},
		[]string{"type"},
	)

	EventsPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_publish_failures_total",
			Help:      "Catalog events that could not be published",
		},
		[]string{"reason"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_consumed_total",
			Help:      "Catalog events consumed, by outcome",
		},
		[]string{"type", "result"},
	)

	EventsCircuitState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "events_circuit_state",
			Help:      "Publisher circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// Auth
	AuthTokenValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_token_validations_total",
			Help:      "Bearer token validations by result",
		},
		[]string{"result"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a successful related-videos ranking.
func RecordRecommendation(duration time.Duration, candidates, results int, personalized bool) {
	RecommendRequests.WithLabelValues(strconv.FormatBool(personalized)).Inc()
	RecommendDuration.Observe(duration.Seconds())
	RecommendCandidates.Observe(float64(candidates))
	RecommendResults.Observe(float64(results))
}

// RecordRecommendationError records a ranking that failed before scoring.
func RecordRecommendationError() {
	RecommendErrors.Inc()
}

// RecordCatalogOperation records a catalog store call.
func RecordCatalogOperation(operation string, duration time.Duration, err error) {
	CatalogOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		CatalogOperationErrors.WithLabelValues(operation).Inc()
	}
}

// RecordEventPublished records a published catalog event.
func RecordEventPublished(eventType string) {
	EventsPublished.WithLabelValues(eventType).Inc()
}

// RecordEventPublishFailure records a failed publish. reason is
// "circuit_open" or "publish_error".
func RecordEventPublishFailure(reason string) {
	EventsPublishFailures.WithLabelValues(reason).Inc()
}

// RecordEventConsumed records the outcome of handling a catalog event.
// result is "applied", "invalid" or "error".
func RecordEventConsumed(eventType, result string) {
	EventsConsumed.WithLabelValues(eventType, result).Inc()
}

// SetEventsCircuitState stores the publisher breaker state.
func SetEventsCircuitState(state int) {
	EventsCircuitState.Set(float64(state))
}

// RecordTokenValidation records a bearer token check. result is
// "valid", "invalid" or "absent".
func RecordTokenValidation(result string) {
	AuthTokenValidations.WithLabelValues(result).Inc()
}
