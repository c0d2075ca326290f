// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/sudanva21/StreamRush2.0/internal/auth"
	"github.com/sudanva21/StreamRush2.0/internal/catalog"
	"github.com/sudanva21/StreamRush2.0/internal/eventprocessor"
	"github.com/sudanva21/StreamRush2.0/internal/logging"
	"github.com/sudanva21/StreamRush2.0/internal/models"
	"github.com/sudanva21/StreamRush2.0/internal/validation"
)

// maxVideoBodyBytes bounds PUT /videos/{id} request bodies.
const maxVideoBodyBytes = 1 << 20

// ViewResult is the response of POST /videos/{id}/views. Views is set
// when the count was updated synchronously; Queued when an event was
// published instead.
type ViewResult struct {
	VideoID string `json:"videoId"`
	Views   *int64 `json:"views,omitempty"`
	Queued  bool   `json:"queued"`
}

// GetVideo handles GET /api/v1/videos/{id}.
func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	req, verr := bindVideoPath(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}

	video, err := h.catalog.GetVideo(r.Context(), req.VideoID)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, video)
}

// Related handles GET /api/v1/videos/{id}/related. Authenticated viewers
// get the subscription bonus.
func (h *Handler) Related(w http.ResponseWriter, r *http.Request) {
	req, verr := bindRelated(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}

	viewerID, _ := auth.ViewerFromContext(r.Context())
	related, err := h.recommender.Related(r.Context(), req.VideoID, viewerID, req.Limit)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondList(w, r, related)
}

// RecordView handles POST /api/v1/videos/{id}/views.
func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	req, verr := bindVideoPath(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	ctx := r.Context()

	video, err := h.catalog.GetVideo(ctx, req.VideoID)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	result := ViewResult{VideoID: video.ID}
	status := http.StatusOK
	if h.events != nil {
		if err := h.events.Publish(ctx, eventprocessor.NewVideoViewed(video.ID, 1)); err != nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "View could not be recorded", err)
			return
		}
		result.Queued = true
		status = http.StatusAccepted
	} else {
		views, err := h.catalog.IncrementViews(ctx, video.ID, 1)
		if err != nil {
			h.respondCatalogError(w, r, err)
			return
		}
		result.Views = &views
	}

	if viewerID, ok := auth.ViewerFromContext(ctx); ok {
		entry := models.NewHistoryEntry(viewerID, video, h.now())
		if err := h.viewers.AddHistory(ctx, entry); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("video_id", video.ID).Msg("failed to record watch history")
		}
	}

	respondJSON(w, r, status, result)
}

// PutVideo handles PUT /api/v1/videos/{id}. The caller becomes the
// uploader of a new video and must already be the uploader of an existing
// one. Counters and creation time of an existing video are preserved.
func (h *Handler) PutVideo(w http.ResponseWriter, r *http.Request) {
	req, verr := bindVideoPath(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	viewerID, _ := auth.ViewerFromContext(r.Context())
	ctx := r.Context()

	var video models.Video
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxVideoBodyBytes))
	if err := dec.Decode(&video); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Request body must be a JSON video", nil)
		return
	}
	if video.ID != "" && video.ID != req.VideoID {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Body id does not match path", nil)
		return
	}
	video.ID = req.VideoID
	video.UploaderID = viewerID

	existing, err := h.catalog.GetVideo(ctx, req.VideoID)
	switch {
	case err == nil:
		if existing.UploaderID != viewerID {
			respondError(w, r, http.StatusForbidden, ErrCodeForbidden, "Only the uploader can modify this video", nil)
			return
		}
		video.Views = existing.Views
		video.Likes = existing.Likes
		video.Dislikes = existing.Dislikes
		video.CreatedAt = existing.CreatedAt
	case errors.Is(err, models.ErrVideoNotFound):
		video.Views, video.Likes, video.Dislikes = 0, 0, 0
	default:
		h.respondCatalogError(w, r, err)
		return
	}

	if verr := validation.ValidateStruct(&video); verr != nil {
		respondValidation(w, r, verr)
		return
	}

	if h.events != nil {
		if err := h.events.Publish(ctx, eventprocessor.NewVideoUpserted(&video)); err != nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Video could not be saved", err)
			return
		}
		respondJSON(w, r, http.StatusAccepted, &video)
		return
	}
	if err := h.catalog.PutVideo(ctx, &video); err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, &video)
}

// DeleteVideo handles DELETE /api/v1/videos/{id}. Only the uploader may
// delete.
func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	req, verr := bindVideoPath(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	viewerID, _ := auth.ViewerFromContext(r.Context())
	ctx := r.Context()

	existing, err := h.catalog.GetVideo(ctx, req.VideoID)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	if existing.UploaderID != viewerID {
		respondError(w, r, http.StatusForbidden, ErrCodeForbidden, "Only the uploader can delete this video", nil)
		return
	}

	if h.events != nil {
		if err := h.events.Publish(ctx, eventprocessor.NewVideoDeleted(req.VideoID)); err != nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Video could not be deleted", err)
			return
		}
		respondJSON(w, r, http.StatusAccepted, map[string]string{"videoId": req.VideoID})
		return
	}
	if err := h.catalog.DeleteVideo(ctx, req.VideoID); err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondCatalogError maps store and service errors to responses.
func (h *Handler) respondCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrVideoNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Video not found", nil)
	case errors.Is(err, catalog.ErrInvalidVideo), errors.Is(err, catalog.ErrInvalidID), errors.Is(err, catalog.ErrInvalidRating):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Invalid video", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Request timed out", err)
	case errors.Is(err, context.Canceled):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Request canceled", nil)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
	}
}
