// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package recommend

import (
	"fmt"
	"time"
)

// Config contains operational limits for the related-videos service.
// Scoring weights are fixed and not configurable.
type Config struct {
	// DefaultLimit is used when a request does not specify a limit.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps the limit a request may ask for.
	MaxLimit int `json:"max_limit"`

	// CandidatePoolSize is the number of catalog videos fetched per request.
	// Zero fetches the whole catalog.
	CandidatePoolSize int `json:"candidate_pool_size"`

	// Timeout bounds catalog lookups for a single request.
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns the watch page defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit:      DefaultLimit,
		MaxLimit:          50,
		CandidatePoolSize: 500,
		Timeout:           5 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit (%d) must be >= default_limit (%d)", c.MaxLimit, c.DefaultLimit)
	}
	if c.CandidatePoolSize < 0 {
		return fmt.Errorf("candidate_pool_size must be non-negative, got %d", c.CandidatePoolSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// EffectiveLimit resolves a requested limit: zero or negative means the
// default, anything above MaxLimit is capped.
func (c *Config) EffectiveLimit(requested int) int {
	if requested <= 0 {
		return c.DefaultLimit
	}
	if requested > c.MaxLimit {
		return c.MaxLimit
	}
	return requested
}
