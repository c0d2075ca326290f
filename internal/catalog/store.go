// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/sudanva21/StreamRush2.0/internal/logging"
	"github.com/sudanva21/StreamRush2.0/internal/metrics"
	"github.com/sudanva21/StreamRush2.0/internal/models"
)

// Errors
var (
	// ErrVideoNotFound is returned for unknown video IDs.
	ErrVideoNotFound = models.ErrVideoNotFound

	// ErrInvalidVideo is returned when a video fails validation before a write.
	ErrInvalidVideo = errors.New("invalid video")

	// ErrInvalidID is returned for empty viewer or uploader IDs.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrInvalidRating is returned when a rating is neither like nor dislike.
	ErrInvalidRating = errors.New("invalid rating")
)

// maxConflictRetries bounds read-modify-write retries on badger.ErrConflict.
const maxConflictRetries = 3

// Config configures the Badger database behind the store.
type Config struct {
	Path       string
	InMemory   bool
	SyncWrites bool
	GCRatio    float64
}

// Store is a BadgerDB-backed catalog and viewer store.
type Store struct {
	db      *badger.DB
	gcRatio float64
	logger  zerolog.Logger
	now     func() time.Time
}

// Open opens (or creates) the catalog database.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("catalog path is required for on-disk storage")
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = newBadgerLogger(logging.WithComponent("badger"))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	gcRatio := cfg.GCRatio
	if gcRatio <= 0 || gcRatio >= 1 {
		gcRatio = 0.5
	}

	s := NewStore(db)
	s.gcRatio = gcRatio

	s.logger.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("catalog opened")
	return s, nil
}

// NewStore wraps an already open database.
func NewStore(db *badger.DB) *Store {
	return &Store{
		db:      db,
		gcRatio: 0.5,
		logger:  logging.WithComponent("catalog"),
		now:     time.Now,
	}
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	return nil
}

// RunGC runs value-log garbage collection until nothing is left to rewrite.
// In-memory databases have no value log and return immediately.
func (s *Store) RunGC() error {
	if s.db.Opts().InMemory {
		return nil
	}
	start := time.Now()
	for {
		err := s.db.RunValueLogGC(s.gcRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			observe("gc", start, nil)
			return nil
		}
		if err != nil {
			observe("gc", start, err)
			return fmt.Errorf("run value log GC: %w", err)
		}
	}
}

// observe records an operation's latency and outcome.
func observe(op string, start time.Time, err error) {
	metrics.RecordCatalogOperation(op, time.Since(start), err)
}
