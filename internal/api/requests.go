// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sudanva21/StreamRush2.0/internal/models"
	"github.com/sudanva21/StreamRush2.0/internal/validation"
)

// VideoPathRequest is a route with a {id} video parameter.
type VideoPathRequest struct {
	VideoID string `query:"id" validate:"identifier"`
}

// RelatedRequest holds GET /videos/{id}/related parameters. A limit of 0
// means the service default.
type RelatedRequest struct {
	VideoID string `query:"id" validate:"identifier"`
	Limit   int    `query:"limit" validate:"min=0,max=100"`
}

// TrendingRequest holds GET /trending parameters.
type TrendingRequest struct {
	Category string `query:"category" validate:"max=64"`
	Limit    int    `query:"limit" validate:"min=1,max=1000"`
}

// SearchRequest holds GET /search parameters.
type SearchRequest struct {
	Query      string `query:"q" validate:"max=200"`
	SortBy     string `query:"sort_by" validate:"omitempty,oneof=relevance upload_date view_count rating"`
	UploadDate string `query:"upload_date" validate:"omitempty,oneof=any hour today week month year"`
	Duration   string `query:"duration" validate:"omitempty,oneof=any short medium long"`
	Category   string `query:"category" validate:"max=64"`
	Limit      int    `query:"limit" validate:"min=1,max=1000"`
}

// Filters converts the request to search filters, filling defaults.
func (s *SearchRequest) Filters() models.SearchFilters {
	f := models.DefaultSearchFilters()
	if s.SortBy != "" {
		f.SortBy = s.SortBy
	}
	if s.UploadDate != "" {
		f.UploadDate = s.UploadDate
	}
	if s.Duration != "" {
		f.Duration = s.Duration
	}
	if s.Category != "" {
		f.Category = s.Category
	}
	return f
}

// UploaderPathRequest is a route with an {uploaderId} parameter.
type UploaderPathRequest struct {
	UploaderID string `query:"uploaderId" validate:"identifier"`
}

// HistoryRequest holds GET /history parameters.
type HistoryRequest struct {
	Limit int `query:"limit" validate:"min=1,max=1000"`
}

// RatedRequest holds GET /ratings parameters.
type RatedRequest struct {
	Rating string `query:"rating" validate:"oneof=like dislike"`
}

// queryInt reads an integer query parameter, returning def when absent.
func queryInt(r *http.Request, key string, def int) (int, *validation.RequestValidationError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewFieldError(key, "integer", key+" must be an integer")
	}
	return v, nil
}

// bindRelated parses and validates related-video parameters.
func bindRelated(r *http.Request) (*RelatedRequest, *validation.RequestValidationError) {
	limit, verr := queryInt(r, "limit", 0)
	if verr != nil {
		return nil, verr
	}
	req := &RelatedRequest{VideoID: chi.URLParam(r, "id"), Limit: limit}
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}

func bindVideoPath(r *http.Request) (*VideoPathRequest, *validation.RequestValidationError) {
	req := &VideoPathRequest{VideoID: chi.URLParam(r, "id")}
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}

func bindUploaderPath(r *http.Request) (*UploaderPathRequest, *validation.RequestValidationError) {
	req := &UploaderPathRequest{UploaderID: chi.URLParam(r, "uploaderId")}
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}

func bindTrending(r *http.Request, defaultLimit int) (*TrendingRequest, *validation.RequestValidationError) {
	limit, verr := queryInt(r, "limit", defaultLimit)
	if verr != nil {
		return nil, verr
	}
	req := &TrendingRequest{Category: r.URL.Query().Get("category"), Limit: limit}
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}

func bindSearch(r *http.Request, defaultLimit int) (*SearchRequest, *validation.RequestValidationError) {
	limit, verr := queryInt(r, "limit", defaultLimit)
	if verr != nil {
		return nil, verr
	}
	q := r.URL.Query()
	req := &SearchRequest{
		Query:      q.Get("q"),
		SortBy:     q.Get("sort_by"),
		UploadDate: q.Get("upload_date"),
		Duration:   q.Get("duration"),
		Category:   q.Get("category"),
		Limit:      limit,
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}

func bindHistory(r *http.Request, defaultLimit int) (*HistoryRequest, *validation.RequestValidationError) {
	limit, verr := queryInt(r, "limit", defaultLimit)
	if verr != nil {
		return nil, verr
	}
	req := &HistoryRequest{Limit: limit}
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}

func bindRated(r *http.Request) (*RatedRequest, *validation.RequestValidationError) {
	req := &RatedRequest{Rating: r.URL.Query().Get("rating")}
	if req.Rating == "" {
		req.Rating = string(models.RatingLike)
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}
