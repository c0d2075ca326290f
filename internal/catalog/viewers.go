// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// Subscribe records that viewerID follows uploaderID. Idempotent.
func (s *Store) Subscribe(ctx context.Context, viewerID, uploaderID string) (err error) {
	start := time.Now()
	defer func() { observe("subscribe", start, err) }()

	if viewerID == "" || uploaderID == "" {
		return fmt.Errorf("%w: viewer and uploader are required", ErrInvalidID)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(subKey(viewerID, uploaderID), nil)
	})
}

// Unsubscribe removes a subscription. Idempotent.
func (s *Store) Unsubscribe(ctx context.Context, viewerID, uploaderID string) (err error) {
	start := time.Now()
	defer func() { observe("unsubscribe", start, err) }()

	if viewerID == "" || uploaderID == "" {
		return fmt.Errorf("%w: viewer and uploader are required", ErrInvalidID)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(subKey(viewerID, uploaderID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return nil
	})
}

// Subscriptions returns the uploaders viewerID follows. Unknown viewers
// get an empty set.
func (s *Store) Subscriptions(ctx context.Context, viewerID string) (subs models.Subscriptions, err error) {
	start := time.Now()
	defer func() { observe("subscriptions", start, err) }()

	subs = models.Subscriptions{}
	if viewerID == "" {
		return subs, nil
	}

	prefix := subViewerPrefix(viewerID)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			uploader := bytes.TrimPrefix(it.Item().Key(), prefix)
			subs[string(uploader)] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

// AddHistory appends a watch-history entry.
func (s *Store) AddHistory(ctx context.Context, entry models.HistoryEntry) (err error) {
	start := time.Now()
	defer func() { observe("add_history", start, err) }()

	if entry.ViewerID == "" || entry.VideoID == "" {
		return fmt.Errorf("%w: history needs viewer and video", ErrInvalidID)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry.WatchedAt.IsZero() {
		entry.WatchedAt = s.now().UTC()
	}

	data, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(historyKey(entry.ViewerID, entry.WatchedAt, entry.VideoID), data)
	})
}

// History returns up to limit entries for viewerID, newest first.
// limit <= 0 returns the full history.
func (s *Store) History(ctx context.Context, viewerID string, limit int) (entries []models.HistoryEntry, err error) {
	start := time.Now()
	defer func() { observe("history", start, err) }()

	entries = make([]models.HistoryEntry, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = historyViewerPrefix(viewerID)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if limit > 0 && len(entries) >= limit {
				return nil
			}
			var h models.HistoryEntry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &h)
			}); err != nil {
				return fmt.Errorf("decode history: %w", err)
			}
			entries = append(entries, h)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
