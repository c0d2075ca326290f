// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/sudanva21/StreamRush2.0/internal/auth"
	"github.com/sudanva21/StreamRush2.0/internal/catalog"
	"github.com/sudanva21/StreamRush2.0/internal/config"
	"github.com/sudanva21/StreamRush2.0/internal/eventprocessor"
	"github.com/sudanva21/StreamRush2.0/internal/logging"
	"github.com/sudanva21/StreamRush2.0/internal/models"
	"github.com/sudanva21/StreamRush2.0/internal/recommend"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// recordingEvents captures published catalog events.
type recordingEvents struct {
	mu     sync.Mutex
	events []*eventprocessor.CatalogEvent
	err    error
}

func (p *recordingEvents) Publish(_ context.Context, e *eventprocessor.CatalogEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingEvents) published() []*eventprocessor.CatalogEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*eventprocessor.CatalogEvent(nil), p.events...)
}

type testEnv struct {
	store   *catalog.Store
	handler *Handler
	router  http.Handler
	tokens  *auth.JWTManager
}

type envOptions struct {
	events    EventPublisher
	checks    map[string]ReadinessCheck
	rateLimit int
}

// newTestEnv wires the API against an in-memory catalog and a scorer
// pinned to testNow.
func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()

	store, err := catalog.Open(catalog.Config{InMemory: true})
	if err != nil {
		t.Fatalf("catalog.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	svc, err := recommend.NewService(recommend.DefaultConfig(), store, store,
		recommend.NewScorer(func() time.Time { return testNow }), logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("recommend.NewService() error = %v", err)
	}

	h, err := NewHandler(HandlerDeps{
		Recommender: svc,
		Catalog:     store,
		Viewers:     store,
		Events:      opts.events,
		Checks:      opts.checks,
		API:         config.APIConfig{DefaultPageSize: 20, MaxPageSize: 100},
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	h.now = func() time.Time { return testNow }

	sec := config.SecurityConfig{
		AuthMode:          config.AuthModeJWT,
		JWTSecret:         testSecret,
		TokenTTL:          time.Hour,
		RateLimitReqs:     opts.rateLimit,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: opts.rateLimit == 0,
		CORSOrigins:       []string{"https://app.example.com"},
	}
	tokens, err := auth.NewJWTManager(&sec)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	router := NewRouter(h, auth.NewMiddleware(tokens, sec.AuthMode), NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec)))
	return &testEnv{store: store, handler: h, router: router.SetupChi(), tokens: tokens}
}

func (e *testEnv) seed(t *testing.T, videos ...*models.Video) {
	t.Helper()
	for _, v := range videos {
		if err := e.store.PutVideo(context.Background(), v); err != nil {
			t.Fatalf("PutVideo(%s) error = %v", v.ID, err)
		}
	}
}

func (e *testEnv) token(t *testing.T, viewerID string) string {
	t.Helper()
	tok, err := e.tokens.GenerateToken(viewerID)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return tok
}

// do sends a request through the full router. token may be empty.
func (e *testEnv) do(t *testing.T, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) testEnvelope {
	t.Helper()
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (body %q)", err, w.Body.String())
	}
	return env
}

func videoIDs(videos []models.Video) []string {
	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	return ids
}

// relatedFixture scores against reference R (Music, U1, tags rock/live):
// C=100, A=70, E=50 (+25 when subscribed to U4), B=30, D=0.
func relatedFixture() []*models.Video {
	old := testNow.Add(-60 * 24 * time.Hour)
	return []*models.Video{
		{ID: "R", Title: "Reference", UploaderID: "U1", Category: "Music", Tags: []string{"rock", "live"}, CreatedAt: old},
		{ID: "A", Title: "A", UploaderID: "U2", Category: "Music", Tags: []string{"rock"}, CreatedAt: old},
		{ID: "B", Title: "B", UploaderID: "U1", Category: "Gaming", CreatedAt: old},
		{ID: "C", Title: "C", UploaderID: "U1", Category: "Music", Tags: []string{"live"}, CreatedAt: old},
		{ID: "D", Title: "D", UploaderID: "U3", Category: "News", CreatedAt: old},
		{ID: "E", Title: "E", UploaderID: "U4", Category: "Music", CreatedAt: old},
	}
}

var errBroker = errors.New("broker unavailable")
