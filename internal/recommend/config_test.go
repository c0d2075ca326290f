// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package recommend

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultLimit != 15 {
		t.Errorf("DefaultLimit = %d, want 15", cfg.DefaultLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero default limit", func(c *Config) { c.DefaultLimit = 0 }, true},
		{"max below default", func(c *Config) { c.MaxLimit = 10 }, true},
		{"negative pool", func(c *Config) { c.CandidatePoolSize = -1 }, true},
		{"unbounded pool", func(c *Config) { c.CandidatePoolSize = 0 }, false},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_EffectiveLimit(t *testing.T) {
	cfg := &Config{DefaultLimit: 15, MaxLimit: 50, Timeout: time.Second}

	tests := []struct {
		requested int
		want      int
	}{
		{0, 15},
		{-4, 15},
		{1, 1},
		{50, 50},
		{51, 50},
	}

	for _, tt := range tests {
		if got := cfg.EffectiveLimit(tt.requested); got != tt.want {
			t.Errorf("EffectiveLimit(%d) = %d, want %d", tt.requested, got, tt.want)
		}
	}
}
