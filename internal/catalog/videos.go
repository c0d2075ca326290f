// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/sudanva21/StreamRush2.0/internal/models"
	"github.com/sudanva21/StreamRush2.0/internal/validation"
)

// ValidateVideo checks a video before it is written.
func ValidateVideo(v *models.Video) error {
	if v == nil {
		return fmt.Errorf("%w: nil video", ErrInvalidVideo)
	}
	if verr := validation.ValidateStruct(v); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidVideo, verr.Error())
	}
	return nil
}

// PutVideo inserts or updates a video's metadata. UpdatedAt is set to now.
// A new video keeps the counters it was given and CreatedAt defaults to
// now. An existing video keeps its stored views, likes, dislikes and
// CreatedAt, so counters applied concurrently are never rolled back.
func (s *Store) PutVideo(ctx context.Context, v *models.Video) (err error) {
	start := time.Now()
	defer func() { observe("put_video", start, err) }()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateVideo(v); err != nil {
		return err
	}

	return s.updateWithRetry(ctx, func(txn *badger.Txn) error {
		rec := *v
		now := s.now().UTC()

		var stored models.Video
		switch err := getVideo(txn, rec.ID, &stored); {
		case err == nil:
			rec.Views = stored.Views
			rec.Likes = stored.Likes
			rec.Dislikes = stored.Dislikes
			rec.CreatedAt = stored.CreatedAt
		case errors.Is(err, ErrVideoNotFound):
			if rec.CreatedAt.IsZero() {
				rec.CreatedAt = now
			}
		default:
			return err
		}
		rec.UpdatedAt = now
		return setVideo(txn, &rec)
	})
}

// GetVideo returns the video with the given ID or ErrVideoNotFound.
func (s *Store) GetVideo(ctx context.Context, id string) (v *models.Video, err error) {
	start := time.Now()
	defer func() {
		if errors.Is(err, ErrVideoNotFound) {
			observe("get_video", start, nil)
			return
		}
		observe("get_video", start, err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var video models.Video
	err = s.db.View(func(txn *badger.Txn) error {
		return getVideo(txn, id, &video)
	})
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func getVideo(txn *badger.Txn, id string, dst *models.Video) error {
	item, err := txn.Get(videoKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrVideoNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("get video: %w", err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
}

// DeleteVideo removes a video. Deleting an unknown ID is not an error.
func (s *Store) DeleteVideo(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe("delete_video", start, err) }()

	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(videoKey(id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete video: %w", err)
		}
		return nil
	})
}

// ListCandidates returns up to limit videos in key order; limit <= 0
// returns every video.
func (s *Store) ListCandidates(ctx context.Context, limit int) (videos []models.Video, err error) {
	start := time.Now()
	defer func() { observe("list_candidates", start, err) }()

	videos = make([]models.Video, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(videoPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if limit > 0 && len(videos) >= limit {
				return nil
			}
			var v models.Video
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &v)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			videos = append(videos, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

// IncrementViews adds delta to a video's view count and returns the new
// total. Counts never drop below zero.
func (s *Store) IncrementViews(ctx context.Context, id string, delta int64) (views int64, err error) {
	start := time.Now()
	defer func() { observe("increment_views", start, err) }()

	err = s.updateWithRetry(ctx, func(txn *badger.Txn) error {
		var v models.Video
		if err := getVideo(txn, id, &v); err != nil {
			return err
		}
		v.Views += delta
		if v.Views < 0 {
			v.Views = 0
		}
		views = v.Views
		return setVideo(txn, &v)
	})
	if err != nil {
		return 0, err
	}
	return views, nil
}

func setVideo(txn *badger.Txn, v *models.Video) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal video: %w", err)
	}
	if err := txn.Set(videoKey(v.ID), data); err != nil {
		return fmt.Errorf("set video: %w", err)
	}
	return nil
}

// updateWithRetry runs fn in a read-write transaction, retrying up to
// maxConflictRetries times when a concurrent writer commits first.
func (s *Store) updateWithRetry(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}
