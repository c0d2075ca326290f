// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sudanva21/StreamRush2.0/internal/api"
	"github.com/sudanva21/StreamRush2.0/internal/auth"
	"github.com/sudanva21/StreamRush2.0/internal/catalog"
	"github.com/sudanva21/StreamRush2.0/internal/config"
	"github.com/sudanva21/StreamRush2.0/internal/logging"
	"github.com/sudanva21/StreamRush2.0/internal/recommend"
	"github.com/sudanva21/StreamRush2.0/internal/supervisor"
	"github.com/sudanva21/StreamRush2.0/internal/supervisor/services"
)

//nolint:gocyclo // sequential startup
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("auth_mode", cfg.Security.AuthMode).
		Bool("nats_enabled", cfg.NATS.Enabled).
		Msg("Starting StreamRush")

	store, err := catalog.Open(catalog.Config{
		Path:       cfg.Catalog.Path,
		InMemory:   cfg.Catalog.InMemory,
		SyncWrites: cfg.Catalog.SyncWrites,
		GCRatio:    cfg.Catalog.GCRatio,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open catalog")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog")
		}
	}()
	if cfg.Catalog.InMemory {
		logging.Warn().Msg("Catalog is in memory (CATALOG_IN_MEMORY=true); data is lost on restart")
	}

	events, err := InitEvents(cfg, store)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize catalog events")
		return
	}
	defer events.Close()

	recommender, err := recommend.NewService(&recommend.Config{
		DefaultLimit:      cfg.Recommend.DefaultLimit,
		MaxLimit:          cfg.Recommend.MaxLimit,
		CandidatePoolSize: cfg.Recommend.CandidatePoolSize,
		Timeout:           cfg.Recommend.Timeout,
	}, store, store, recommend.NewScorer(nil), logging.Logger())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create recommendation service")
		return
	}

	var validator auth.TokenValidator
	switch cfg.Security.AuthMode {
	case config.AuthModeJWT:
		jwtManager, err := auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Error().Err(err).Msg("Failed to initialize JWT manager")
			return
		}
		validator = jwtManager
		logging.Info().Msg("JWT authentication enabled")
	case config.AuthModeNone:
		logging.Warn().Msg("Authentication is DISABLED (AUTH_MODE=none): every request is anonymous and writes are rejected")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	routerService := services.NewEventRouterService(events.Router, logging.Logger())

	handler, err := api.NewHandler(api.HandlerDeps{
		Recommender: recommender,
		Catalog:     store,
		Viewers:     store,
		Events:      events.Publisher,
		Checks: map[string]api.ReadinessCheck{
			"catalog": func(ctx context.Context) error {
				_, err := store.ListCandidates(ctx, 1)
				return err
			},
			"event_router":  routerService.Ready,
			"event_circuit": events.CircuitCheck,
		},
		API: cfg.API,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create API handler")
		return
	}

	router := api.NewRouter(
		handler,
		auth.NewMiddleware(validator, cfg.Security.AuthMode),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      http.TimeoutHandler(router.SetupChi(), cfg.Server.RequestTimeout, `{"success":false,"error":{"code":"SERVICE_UNAVAILABLE","message":"Request timed out"}}`),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return
	}

	tree.AddDataService(services.NewCatalogGCService(store, cfg.Catalog.GCInterval, logging.Logger()))
	tree.AddMessagingService(routerService)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("StreamRush stopped")
}
