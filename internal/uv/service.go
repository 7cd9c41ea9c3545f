package uv

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Provider defines the interface for UV forecast providers.
type Provider interface {
	// FetchForecast fetches one day of UV data for a location.
	FetchForecast(ctx context.Context, lat, lon float64) (*Forecast, error)

	// Name returns the provider name for logging.
	Name() string
}

// Metrics records provider call outcomes and cache effectiveness.
type Metrics interface {
	RecordRequest(provider, operation string, duration time.Duration, err error)
	RecordCacheHit(provider string)
	RecordCacheMiss(provider string)
}

// ServiceConfig holds configuration for the UV service.
type ServiceConfig struct {
	// Provider is the UV forecast provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// Metrics receives cache hit/miss and provider request observations
	// (optional).
	Metrics Metrics

	// CacheTTL is how long to cache forecasts (default: 30 minutes).
	// UV forecasts update hourly at most, so a generous cache is fine.
	CacheTTL time.Duration

	// CacheGridSize is the cache grid cell size in degrees (default: 0.1).
	// Points within the same cell share cached data.
	CacheGridSize float64

	// StaleIfErrorTTL allows serving stale data on provider errors
	// (default: 3 hours).
	StaleIfErrorTTL time.Duration
}

// Service provides UV forecast data with caching.
type Service struct {
	provider        Provider
	logger          zerolog.Logger
	metrics         Metrics
	cacheTTL        time.Duration
	cacheGridSize   float64
	staleIfErrorTTL time.Duration

	mu          sync.RWMutex
	cache       map[string]*cachedForecast
	lastCleanup time.Time
}

type cachedForecast struct {
	forecast  *Forecast
	fetchedAt time.Time
	expiresAt time.Time
}

// NewService creates a new UV service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Minute
	}

	cacheGridSize := cfg.CacheGridSize
	if cacheGridSize == 0 {
		cacheGridSize = 0.1 // ~11km at the equator
	}

	staleIfErrorTTL := cfg.StaleIfErrorTTL
	if staleIfErrorTTL == 0 {
		staleIfErrorTTL = 3 * time.Hour
	}

	return &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		metrics:         cfg.Metrics,
		cacheTTL:        cacheTTL,
		cacheGridSize:   cacheGridSize,
		staleIfErrorTTL: staleIfErrorTTL,
		cache:           make(map[string]*cachedForecast),
	}
}

// GetForecast returns the day's UV forecast for a location, cached per
// grid cell.
func (s *Service) GetForecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	key := s.cacheKey(lat, lon)

	s.mu.RLock()
	if cached, ok := s.cache[key]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		s.recordCacheHit()
		return cached.forecast, nil
	}
	s.mu.RUnlock()

	return s.fetchForecast(ctx, lat, lon, key)
}

func (s *Service) fetchForecast(ctx context.Context, lat, lon float64, key string) (*Forecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check under the write lock.
	if cached, ok := s.cache[key]; ok && time.Now().Before(cached.expiresAt) {
		s.recordCacheHit()
		return cached.forecast, nil
	}

	s.recordCacheMiss()
	s.logger.Debug().
		Float64("lat", lat).
		Float64("lon", lon).
		Str("provider", s.provider.Name()).
		Msg("fetching uv forecast from provider")

	start := time.Now()
	forecast, err := s.provider.FetchForecast(ctx, lat, lon)
	if s.metrics != nil {
		s.metrics.RecordRequest(s.provider.Name(), "fetch_forecast", time.Since(start), err)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("failed to fetch uv forecast")

		if cached, ok := s.cache[key]; ok {
			if time.Now().Before(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
				s.logger.Warn().
					Time("fetched_at", cached.fetchedAt).
					Msg("serving stale uv forecast due to provider error")
				return cached.forecast, nil
			}
		}

		return nil, ErrProviderUnavailable
	}

	if len(forecast.Hourly) == 0 {
		return nil, ErrNoDataForLocation
	}

	now := time.Now()
	s.cache[key] = &cachedForecast{
		forecast:  forecast,
		fetchedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}
	s.cleanupIfNeeded(now)

	return forecast, nil
}

func (s *Service) recordCacheHit() {
	if s.metrics != nil {
		s.metrics.RecordCacheHit(s.provider.Name())
	}
}

func (s *Service) recordCacheMiss() {
	if s.metrics != nil {
		s.metrics.RecordCacheMiss(s.provider.Name())
	}
}

// cacheKey snaps coordinates to the cache grid.
func (s *Service) cacheKey(lat, lon float64) string {
	gridLat := math.Round(lat/s.cacheGridSize) * s.cacheGridSize
	gridLon := math.Round(lon/s.cacheGridSize) * s.cacheGridSize
	return fmt.Sprintf("%.4f:%.4f", gridLat, gridLon)
}

// cleanupIfNeeded drops expired entries. Called with s.mu held.
func (s *Service) cleanupIfNeeded(now time.Time) {
	if now.Sub(s.lastCleanup) < 5*time.Minute {
		return
	}
	for key, cached := range s.cache {
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.cache, key)
		}
	}
	s.lastCleanup = now
}

// validateCoordinates checks if coordinates are valid.
func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
