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

	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// Rating returns viewerID's rating of videoID, RatingNone if unrated.
func (s *Store) Rating(ctx context.Context, viewerID, videoID string) (r models.Rating, err error) {
	start := time.Now()
	defer func() { observe("rating", start, err) }()

	if viewerID == "" || videoID == "" {
		return models.RatingNone, nil
	}
	if err := ctx.Err(); err != nil {
		return models.RatingNone, err
	}
	err = s.db.View(func(txn *badger.Txn) error {
		r, err = getRating(txn, viewerID, videoID)
		return err
	})
	if err != nil {
		return models.RatingNone, fmt.Errorf("get rating: %w", err)
	}
	return r, nil
}

// Rate sets or clears viewerID's rating of videoID and moves the video's
// like and dislike counters to match, in one transaction. With active the
// rating becomes r. Without it the rating is cleared only while it is
// still r, so replaying the same request changes nothing. Returns the
// video after the change.
func (s *Store) Rate(ctx context.Context, viewerID, videoID string, r models.Rating, active bool) (v *models.Video, err error) {
	start := time.Now()
	defer func() { observe("rate", start, err) }()

	if viewerID == "" || videoID == "" {
		return nil, fmt.Errorf("%w: viewer and video are required", ErrInvalidID)
	}
	if r != models.RatingLike && r != models.RatingDislike {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRating, r)
	}

	var video models.Video
	err = s.updateWithRetry(ctx, func(txn *badger.Txn) error {
		if err := getVideo(txn, videoID, &video); err != nil {
			return err
		}
		prev, err := getRating(txn, viewerID, videoID)
		if err != nil {
			return err
		}

		next := prev
		switch {
		case active:
			next = r
		case prev == r:
			next = models.RatingNone
		}
		if next == prev {
			return nil
		}

		adjustRatingCount(&video, prev, -1)
		adjustRatingCount(&video, next, 1)
		if next == models.RatingNone {
			if err := txn.Delete(ratingKey(viewerID, videoID)); err != nil {
				return fmt.Errorf("delete rating: %w", err)
			}
		} else if err := txn.Set(ratingKey(viewerID, videoID), []byte(next)); err != nil {
			return fmt.Errorf("set rating: %w", err)
		}
		return setVideo(txn, &video)
	})
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// RatedVideos returns the IDs of the videos viewerID rated r, in key order.
func (s *Store) RatedVideos(ctx context.Context, viewerID string, r models.Rating) (ids []string, err error) {
	start := time.Now()
	defer func() { observe("rated_videos", start, err) }()

	ids = make([]string, 0)
	if viewerID == "" {
		return ids, nil
	}
	prefix := ratingViewerPrefix(viewerID)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				if models.Rating(val) == r {
					ids = append(ids, string(item.Key()[len(prefix):]))
				}
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ids, nil
}

func getRating(txn *badger.Txn, viewerID, videoID string) (models.Rating, error) {
	item, err := txn.Get(ratingKey(viewerID, videoID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.RatingNone, nil
	}
	if err != nil {
		return models.RatingNone, err
	}
	r := models.RatingNone
	err = item.Value(func(val []byte) error {
		r = models.Rating(val)
		return nil
	})
	return r, err
}

func adjustRatingCount(v *models.Video, r models.Rating, delta int64) {
	var counter *int64
	switch r {
	case models.RatingLike:
		counter = &v.Likes
	case models.RatingDislike:
		counter = &v.Dislikes
	default:
		return
	}
	*counter += delta
	if *counter < 0 {
		*counter = 0
	}
}
