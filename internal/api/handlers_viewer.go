// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package api

import (
	"net/http"

	"github.com/sudanva21/StreamRush2.0/internal/auth"
	"github.com/sudanva21/StreamRush2.0/internal/eventprocessor"
	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// RatingResult is the response of the like and dislike endpoints. Likes
// and Dislikes are set when the counters were updated synchronously.
type RatingResult struct {
	VideoID  string        `json:"videoId"`
	Rating   models.Rating `json:"rating"`
	Likes    *int64        `json:"likes,omitempty"`
	Dislikes *int64        `json:"dislikes,omitempty"`
	Queued   bool          `json:"queued"`
}

// ListSubscriptions handles GET /api/v1/subscriptions.
func (h *Handler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := auth.ViewerFromContext(r.Context())

	subs, err := h.viewers.Subscriptions(r.Context(), viewerID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
		return
	}
	respondList(w, r, subs.IDs())
}

// Subscribe handles PUT /api/v1/subscriptions/{uploaderId}. Repeating it
// is harmless.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	req, verr := bindUploaderPath(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	viewerID, _ := auth.ViewerFromContext(r.Context())

	if err := h.viewers.Subscribe(r.Context(), viewerID, req.UploaderID); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Unsubscribe handles DELETE /api/v1/subscriptions/{uploaderId}.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	req, verr := bindUploaderPath(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	viewerID, _ := auth.ViewerFromContext(r.Context())

	if err := h.viewers.Unsubscribe(r.Context(), viewerID, req.UploaderID); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/v1/history, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	req, verr := bindHistory(r, h.pageSize.DefaultPageSize)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	viewerID, _ := auth.ViewerFromContext(r.Context())

	entries, err := h.viewers.History(r.Context(), viewerID, h.capLimit(req.Limit))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
		return
	}
	respondList(w, r, entries)
}

// Like handles POST /api/v1/videos/{id}/like. It toggles the viewer's like
// and replaces a dislike.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggleRating(w, r, models.RatingLike)
}

// Dislike handles POST /api/v1/videos/{id}/dislike. It toggles the
// viewer's dislike and replaces a like.
func (h *Handler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.toggleRating(w, r, models.RatingDislike)
}

func (h *Handler) toggleRating(w http.ResponseWriter, r *http.Request, pressed models.Rating) {
	req, verr := bindVideoPath(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	viewerID, _ := auth.ViewerFromContext(r.Context())
	ctx := r.Context()

	if _, err := h.catalog.GetVideo(ctx, req.VideoID); err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	current, err := h.viewers.Rating(ctx, viewerID, req.VideoID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
		return
	}
	next := pressed.Toggle(current)
	active := next == pressed

	result := RatingResult{VideoID: req.VideoID, Rating: next}
	if h.events != nil {
		if err := h.events.Publish(ctx, eventprocessor.NewVideoRated(req.VideoID, viewerID, pressed, active)); err != nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Rating could not be recorded", err)
			return
		}
		result.Queued = true
		respondJSON(w, r, http.StatusAccepted, result)
		return
	}

	video, err := h.viewers.Rate(ctx, viewerID, req.VideoID, pressed, active)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	result.Likes = &video.Likes
	result.Dislikes = &video.Dislikes
	respondJSON(w, r, http.StatusOK, result)
}

// RatedVideos handles GET /api/v1/ratings. rating selects like (default)
// or dislike.
func (h *Handler) RatedVideos(w http.ResponseWriter, r *http.Request) {
	req, verr := bindRated(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	viewerID, _ := auth.ViewerFromContext(r.Context())

	ids, err := h.viewers.RatedVideos(r.Context(), viewerID, models.Rating(req.Rating))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
		return
	}
	respondList(w, r, ids)
}
