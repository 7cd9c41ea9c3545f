// Package main provides the entrypoint for the SunWindow API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sunwindow/sunwindow/internal/api"
	"github.com/sunwindow/sunwindow/internal/api/middleware"
	"github.com/sunwindow/sunwindow/internal/config"
	"github.com/sunwindow/sunwindow/internal/provider/resilience"
	"github.com/sunwindow/sunwindow/internal/telemetry"
	"github.com/sunwindow/sunwindow/internal/uv"
	"github.com/sunwindow/sunwindow/internal/uv/openmeteo"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Local development convenience; ignored when no .env exists.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Str("environment", cfg.Environment).
		Msg("starting SunWindow API")

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	providerMetrics, err := middleware.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	// Resilient HTTP client for the forecast provider, registered so the
	// readiness endpoint can report its circuit state.
	providerClient := resilience.NewClient(resilience.ClientConfig{
		Name:       openmeteo.ProviderName,
		Timeout:    cfg.ProviderTimeout,
		MaxRetries: uint64(cfg.ProviderMaxRetries),
	})
	registry := resilience.NewRegistry()
	registry.Register(openmeteo.ProviderName, providerClient)

	uvProvider := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    cfg.ProviderBaseURL,
		HTTPClient: providerClient,
		Logger:     log,
	})

	uvService := uv.NewService(uv.ServiceConfig{
		Provider:        uvProvider,
		Logger:          log,
		Metrics:         providerMetrics,
		CacheTTL:        cfg.CacheTTL,
		CacheGridSize:   cfg.CacheGridSize,
		StaleIfErrorTTL: cfg.StaleIfErrorTTL,
	})
	log.Info().
		Str("provider", uvProvider.Name()).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("uv service initialized")

	router := api.NewRouter(api.RouterConfig{
		Version:     Version,
		BuildTime:   BuildTime,
		Logger:      log,
		ServiceName: cfg.ServiceName,
		Metrics:     metrics,
		UVService:   uvService,
		Providers:   registry,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
