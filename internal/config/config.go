// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package config

import (
	"time"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	NATS      NATSConfig      `koanf:"nats"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// APIConfig holds list endpoint sizing for trending, search and history.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size" validate:"min=1"`
	MaxPageSize     int `koanf:"max_page_size" validate:"min=1"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds related-videos settings. Weights are fixed in code.
type RecommendConfig struct {
	DefaultLimit      int           `koanf:"default_limit" validate:"min=1"`
	MaxLimit          int           `koanf:"max_limit" validate:"min=1"`
	CandidatePoolSize int           `koanf:"candidate_pool_size" validate:"min=0"`
	Timeout           time.Duration `koanf:"timeout" validate:"gt=0"`
}

// CatalogConfig holds BadgerDB settings for the catalog store.
type CatalogConfig struct {
	// Path is the Badger directory. Ignored when InMemory is true.
	Path string `koanf:"path"`

	// InMemory keeps the catalog in memory only (development, tests).
	InMemory bool `koanf:"in_memory"`

	// SyncWrites fsyncs every write.
	SyncWrites bool `koanf:"sync_writes"`

	// GCInterval is how often value-log garbage collection runs. Zero disables it.
	GCInterval time.Duration `koanf:"gc_interval" validate:"min=0"`

	// GCRatio is the discardable fraction a value-log file needs before GC
	// rewrites it.
	GCRatio float64 `koanf:"gc_ratio" validate:"gt=0,lt=1"`
}

// NATSConfig holds catalog event transport settings.
// When Enabled is false, events flow over an in-process channel.
type NATSConfig struct {
	Enabled          bool          `koanf:"enabled"`
	URL              string        `koanf:"url"`
	Topic            string        `koanf:"topic" validate:"required"`
	StreamName       string        `koanf:"stream_name" validate:"required,excludesall=.*>"`
	StreamMaxAge     time.Duration `koanf:"stream_max_age" validate:"min=0"`
	DuplicateWindow  time.Duration `koanf:"duplicate_window" validate:"min=0"`
	QueueGroup       string        `koanf:"queue_group"`
	DurableName      string        `koanf:"durable_name"`
	SubscribersCount int           `koanf:"subscribers_count" validate:"min=1"`
	AckWait          time.Duration `koanf:"ack_wait" validate:"gt=0"`
	CloseTimeout     time.Duration `koanf:"close_timeout" validate:"gt=0"`
	MaxReconnects    int           `koanf:"max_reconnects"`
	ReconnectWait    time.Duration `koanf:"reconnect_wait" validate:"gt=0"`
	MaxRetries       int           `koanf:"max_retries" validate:"min=0"`

	// Circuit breaker for the publisher.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures" validate:"min=1"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
}

// Auth modes.
const (
	AuthModeNone = "none"
	AuthModeJWT  = "jwt"
)

// SecurityConfig holds authentication, CORS and rate limit settings.
type SecurityConfig struct {
	// AuthMode is "none" (every request is anonymous) or "jwt".
	AuthMode  string        `koanf:"auth_mode" validate:"oneof=none jwt"`
	JWTSecret string        `koanf:"jwt_secret"`
	Issuer    string        `koanf:"issuer"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"gt=0"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Addr returns host:port for the HTTP listener.
func (s *ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// Load reads configuration from defaults, file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
