// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package api

import (
	"net/http"

	"github.com/sudanva21/StreamRush2.0/internal/search"
)

// Trending handles GET /api/v1/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	req, verr := bindTrending(r, h.pageSize.DefaultPageSize)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}

	videos, err := h.catalog.ListCandidates(r.Context(), 0)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	respondList(w, r, search.Trending(videos, req.Category, h.capLimit(req.Limit)))
}

// Search handles GET /api/v1/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req, verr := bindSearch(r, h.pageSize.DefaultPageSize)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}

	videos, err := h.catalog.ListCandidates(r.Context(), 0)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}

	results := search.Search(videos, req.Query, req.Filters(), h.now())
	if limit := h.capLimit(req.Limit); len(results) > limit {
		results = results[:limit]
	}
	respondList(w, r, results)
}
