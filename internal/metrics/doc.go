// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

/*
Package metrics provides Prometheus collectors for StreamRush services.

Collectors are registered on the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP:
  - streamrush_api_requests_total{method,endpoint,status}
  - streamrush_api_request_duration_seconds{method,endpoint}
  - streamrush_api_active_requests

Related videos:
  - streamrush_recommend_requests_total{personalized}
  - streamrush_recommend_duration_seconds
  - streamrush_recommend_candidates
  - streamrush_recommend_results
  - streamrush_recommend_errors_total

Catalog store:
  - streamrush_catalog_operation_duration_seconds{operation}
  - streamrush_catalog_operation_errors_total{operation}

Catalog events:
  - streamrush_events_published_total{type}
  - streamrush_events_publish_failures_total{reason}
  - streamrush_events_consumed_total{type,result}
  - streamrush_events_circuit_state

Auth:
  - streamrush_auth_token_validations_total{result}

Record* helpers keep label handling in one place; call them instead of
touching the collectors directly.
*/
package metrics
