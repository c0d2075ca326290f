// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sudanva21/StreamRush2.0/internal/config"
	"github.com/sudanva21/StreamRush2.0/internal/logging"
	"github.com/sudanva21/StreamRush2.0/internal/metrics"
)

type contextKey string

const viewerContextKey contextKey = "viewer_id"

// TokenCookie is read when no Authorization header is present.
const TokenCookie = "token"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(token string) (*Claims, error)
}

// Middleware attaches the viewer identity to requests.
type Middleware struct {
	validator TokenValidator
	authMode  string
}

// NewMiddleware creates viewer middleware. In AuthModeNone every request
// is anonymous and validator may be nil.
func NewMiddleware(validator TokenValidator, authMode string) *Middleware {
	if validator == nil {
		authMode = config.AuthModeNone
	}
	return &Middleware{validator: validator, authMode: authMode}
}

// ContextWithViewer returns ctx carrying viewerID.
func ContextWithViewer(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, viewerContextKey, viewerID)
}

// ViewerFromContext returns the authenticated viewer, if any.
func ViewerFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(viewerContextKey).(string)
	return id, ok && id != ""
}

// OptionalViewer lets anonymous requests through and resolves the viewer
// when a token is presented. A presented but invalid token is rejected
// with 401 rather than silently downgraded to anonymous.
func (m *Middleware) OptionalViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == config.AuthModeNone {
			next.ServeHTTP(w, r)
			return
		}

		token, present, ok := extractToken(r)
		if !present {
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			metrics.RecordTokenValidation("malformed")
			writeUnauthorized(w, "invalid authorization header")
			return
		}

		claims, err := m.validator.ValidateToken(token)
		if err != nil {
			metrics.RecordTokenValidation("invalid")
			logging.Ctx(r.Context()).Debug().Err(err).Msg("token validation failed")
			writeUnauthorized(w, "invalid token")
			return
		}

		metrics.RecordTokenValidation("valid")
		next.ServeHTTP(w, r.WithContext(ContextWithViewer(r.Context(), claims.ViewerID)))
	})
}

// RequireViewer rejects anonymous requests with 401. It expects
// OptionalViewer to have run first.
func (m *Middleware) RequireViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ViewerFromContext(r.Context()); !ok {
			writeUnauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken reports the token, whether one was presented at all, and
// whether the header was well formed.
func extractToken(r *http.Request) (token string, present, ok bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		cookie, err := r.Cookie(TokenCookie)
		if err != nil || cookie.Value == "" {
			return "", false, false
		}
		return cookie.Value, true, true
	}

	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(value) == "" {
		return "", true, false
	}
	return strings.TrimSpace(value), true, true
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	body := errorBody{}
	body.Error.Code = "UNAUTHORIZED"
	body.Error.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="streamrush"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(body)
}
