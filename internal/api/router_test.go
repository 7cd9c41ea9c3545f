package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwindow/sunwindow/internal/api"
	"github.com/sunwindow/sunwindow/internal/api/models"
	"github.com/sunwindow/sunwindow/internal/uv"
)

// routerProvider serves a fixed forecast for router-level tests.
type routerProvider struct{}

func (routerProvider) FetchForecast(_ context.Context, lat, lon float64) (*uv.Forecast, error) {
	day := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	var hourly []uv.HourlyUV
	for hour := 6; hour <= 18; hour++ {
		hourly = append(hourly, uv.HourlyUV{
			Time:    day.Add(time.Duration(hour) * time.Hour),
			UVIndex: 4,
		})
	}
	return &uv.Forecast{
		Lat:       lat,
		Lon:       lon,
		Timezone:  "UTC",
		Location:  time.UTC,
		Hourly:    hourly,
		Sunrise:   day.Add(5 * time.Hour),
		Sunset:    day.Add(21 * time.Hour),
		FetchedAt: time.Now(),
		Provider:  "fixture",
	}, nil
}

func (routerProvider) Name() string { return "fixture" }

func newTestRouter() http.Handler {
	logger := zerolog.New(io.Discard)
	return api.NewRouter(api.RouterConfig{
		Version:   "test",
		BuildTime: "2024-01-01T00:00:00Z",
		Logger:    logger,
		UVService: uv.NewService(uv.ServiceConfig{
			Provider: routerProvider{},
			Logger:   logger,
		}),
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_Ready(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/ready", http.NoBody)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_SunPosition(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/v1/sun/position?lat=52.37&lon=4.89&at=2024-07-15T12:00:00Z", http.NoBody)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SunPositionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.AboveHorizon)

	// Ambient middleware applied
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRouter_SunExposure(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/sun/exposure?lat=52.37&lon=4.89", http.NoBody)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ExposureAdviceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Window)
	assert.Equal(t, "OPTIMAL_UV", resp.Window.ReasonTag)
}

func TestRouter_ValidationProblem(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/sun/position?lat=bogus&lon=4.89", http.NoBody)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "validation-error")
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/moon/position", http.NoBody)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
