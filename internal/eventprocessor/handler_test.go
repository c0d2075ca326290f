// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/sudanva21/StreamRush2.0/internal/catalog"
	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// fakeStore is an in-memory CatalogStore.
type fakeStore struct {
	mu       sync.Mutex
	videos   map[string]*models.Video
	ratings  map[string]models.Rating
	putErr   error
	deleted  []string
	putCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		videos:  make(map[string]*models.Video),
		ratings: make(map[string]models.Rating),
	}
}

func (s *fakeStore) PutVideo(_ context.Context, v *models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putCalls++
	if s.putErr != nil {
		return s.putErr
	}
	if v.UploaderID == "" {
		return fmt.Errorf("%w: uploader required", catalog.ErrInvalidVideo)
	}
	cp := *v
	s.videos[v.ID] = &cp
	return nil
}

func (s *fakeStore) DeleteVideo(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.videos, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeStore) IncrementViews(_ context.Context, id string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return 0, fmt.Errorf("video %s: %w", id, models.ErrVideoNotFound)
	}
	v.Views += delta
	return v.Views, nil
}

func (s *fakeStore) Rate(_ context.Context, viewerID, videoID string, r models.Rating, active bool) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[videoID]
	if !ok {
		return nil, fmt.Errorf("video %s: %w", videoID, models.ErrVideoNotFound)
	}
	key := viewerID + "/" + videoID
	prev, ok := s.ratings[key]
	if !ok {
		prev = models.RatingNone
	}
	next := prev
	if active {
		next = r
	} else if prev == r {
		next = models.RatingNone
	}
	bump := func(r models.Rating, d int64) {
		switch r {
		case models.RatingLike:
			v.Likes += d
		case models.RatingDislike:
			v.Dislikes += d
		}
	}
	if next != prev {
		bump(prev, -1)
		bump(next, 1)
	}
	s.ratings[key] = next
	cp := *v
	return &cp, nil
}

func eventMessage(t *testing.T, e *CatalogEvent) *message.Message {
	t.Helper()
	data, err := MarshalEvent(e)
	if err != nil {
		t.Fatalf("MarshalEvent() error = %v", err)
	}
	return message.NewMessage(e.EventID, data)
}

func TestNewCatalogHandler_RequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewCatalogHandler(nil, zerolog.Nop()); err == nil {
		t.Error("expected error for nil store")
	}
}

func TestCatalogHandler_AppliesEvents(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	h, err := NewCatalogHandler(store, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	steps := []*CatalogEvent{
		NewVideoUpserted(&models.Video{ID: "v1", UploaderID: "U1", Views: 10}),
		NewVideoViewed("v1", 3),
		NewVideoUpserted(&models.Video{ID: "v2", UploaderID: "U2"}),
		NewVideoDeleted("v2"),
	}
	for _, e := range steps {
		if err := h.Handle(eventMessage(t, e)); err != nil {
			t.Fatalf("Handle(%s) error = %v", e.Type, err)
		}
	}

	if v := store.videos["v1"]; v == nil || v.Views != 13 {
		t.Errorf("v1 = %+v, want 13 views", v)
	}
	if _, ok := store.videos["v2"]; ok {
		t.Error("v2 should be deleted")
	}
}

func TestCatalogHandler_AcksUnrecoverable(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	h, _ := NewCatalogHandler(store, zerolog.Nop())

	tests := []struct {
		name string
		msg  *message.Message
	}{
		{"malformed json", message.NewMessage("m1", []byte("{oops"))},
		{"unknown type", message.NewMessage("m2", []byte(`{"event_id":"e","type":"video.shared"}`))},
		{"invalid video", eventMessage(t, NewVideoUpserted(&models.Video{ID: "no-uploader"}))},
		{"views for missing video", eventMessage(t, NewVideoViewed("ghost", 1))},
		{"like for missing video", eventMessage(t, NewVideoRated("ghost", "V1", models.RatingLike, true))},
		{"like without viewer", message.NewMessage("m3", []byte(`{"event_id":"e","type":"video.liked","video_id":"v1"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := h.Handle(tt.msg); err != nil {
				t.Errorf("Handle() error = %v, want nil (ack)", err)
			}
		})
	}
	if len(store.videos) != 0 {
		t.Errorf("store changed: %v", store.videos)
	}
}

func TestCatalogHandler_ReturnsStoreFailures(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.putErr = errors.New("disk full")
	h, _ := NewCatalogHandler(store, zerolog.Nop())

	err := h.Handle(eventMessage(t, NewVideoUpserted(&models.Video{ID: "v", UploaderID: "U"})))
	if err == nil {
		t.Fatal("Handle() should return transient store errors for retry")
	}
	if !errors.Is(err, store.putErr) {
		t.Errorf("error = %v, want wrapped store error", err)
	}
}

func TestCatalogHandler_AppliesRatings(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.videos["v1"] = &models.Video{ID: "v1", UploaderID: "U1"}
	h, _ := NewCatalogHandler(store, zerolog.Nop())

	steps := []*CatalogEvent{
		NewVideoRated("v1", "V1", models.RatingLike, true),
		NewVideoRated("v1", "V2", models.RatingLike, true),
		NewVideoRated("v1", "V2", models.RatingDislike, true),
		NewVideoRated("v1", "V3", models.RatingDislike, true),
		NewVideoRated("v1", "V3", models.RatingDislike, false),
	}
	for _, e := range steps {
		if err := h.Handle(eventMessage(t, e)); err != nil {
			t.Fatalf("Handle(%s) error = %v", e.Type, err)
		}
	}

	v := store.videos["v1"]
	if v.Likes != 1 || v.Dislikes != 1 {
		t.Errorf("likes/dislikes = %d/%d, want 1/1", v.Likes, v.Dislikes)
	}
}

func TestCatalogHandler_EditKeepsConcurrentViews(t *testing.T) {
	t.Parallel()

	store, err := catalog.Open(catalog.Config{InMemory: true})
	if err != nil {
		t.Fatalf("catalog.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	if err := store.PutVideo(ctx, &models.Video{ID: "v1", UploaderID: "U1", Views: 10}); err != nil {
		t.Fatal(err)
	}
	snapshot, err := store.GetVideo(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	snapshot.Title = "Edited"

	h, _ := NewCatalogHandler(store, zerolog.Nop())
	for _, e := range []*CatalogEvent{
		NewVideoViewed("v1", 1),
		NewVideoRated("v1", "V1", models.RatingLike, true),
		NewVideoUpserted(snapshot),
	} {
		if err := h.Handle(eventMessage(t, e)); err != nil {
			t.Fatalf("Handle(%s) error = %v", e.Type, err)
		}
	}

	got, err := store.GetVideo(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Edited" {
		t.Errorf("Title = %q, want Edited", got.Title)
	}
	if got.Views != 11 || got.Likes != 1 {
		t.Errorf("views/likes after edit = %d/%d, want 11/1", got.Views, got.Likes)
	}
}
