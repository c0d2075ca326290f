// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sudanva21/StreamRush2.0/internal/config"
)

// viewerEcho writes the resolved viewer, or "anonymous".
func viewerEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := ViewerFromContext(r.Context())
		if !ok {
			viewer = "anonymous"
		}
		_, _ = w.Write([]byte(viewer))
	})
}

func newTestMiddleware(t *testing.T) (*Middleware, *JWTManager) {
	t.Helper()
	manager, err := NewJWTManager(testSecurityConfig())
	if err != nil {
		t.Fatal(err)
	}
	return NewMiddleware(manager, config.AuthModeJWT), manager
}

func TestOptionalViewer(t *testing.T) {
	m, manager := newTestMiddleware(t)
	token, _ := manager.GenerateToken("viewer-1")

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
		wantBody   string
	}{
		{"no credentials", func(r *http.Request) {}, http.StatusOK, "anonymous"},
		{"bearer token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, "viewer-1"},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer "+token) }, http.StatusOK, "viewer-1"},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: token}) }, http.StatusOK, "viewer-1"},
		{"bad token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"basic scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") }, http.StatusUnauthorized, "invalid authorization header"},
		{"empty bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer ") }, http.StatusUnauthorized, "invalid authorization header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/v1/related", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			m.OptionalViewer(viewerEcho()).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want to contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOptionalViewer_AuthModeNone(t *testing.T) {
	m := NewMiddleware(nil, config.AuthModeJWT)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	w := httptest.NewRecorder()
	m.OptionalViewer(viewerEcho()).ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "anonymous" {
		t.Errorf("got %d %q, want anonymous pass-through", w.Code, w.Body.String())
	}
}

func TestRequireViewer(t *testing.T) {
	m, manager := newTestMiddleware(t)
	token, _ := manager.GenerateToken("viewer-7")
	h := m.OptionalViewer(m.RequireViewer(viewerEcho()))

	anon := httptest.NewRecorder()
	h.ServeHTTP(anon, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))
	if anon.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", anon.Code)
	}
	if anon.Header().Get("WWW-Authenticate") == "" {
		t.Error("missing WWW-Authenticate header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authed := httptest.NewRecorder()
	h.ServeHTTP(authed, req)
	if authed.Code != http.StatusOK || authed.Body.String() != "viewer-7" {
		t.Errorf("authenticated = %d %q", authed.Code, authed.Body.String())
	}
}

func TestViewerFromContext(t *testing.T) {
	if _, ok := ViewerFromContext(context.Background()); ok {
		t.Error("empty context should be anonymous")
	}
	if _, ok := ViewerFromContext(ContextWithViewer(context.Background(), "")); ok {
		t.Error("empty viewer id should be anonymous")
	}
	id, ok := ViewerFromContext(ContextWithViewer(context.Background(), "v"))
	if !ok || id != "v" {
		t.Errorf("ViewerFromContext() = %q, %v", id, ok)
	}
}
