// Package openmeteo implements the uv.Provider interface against the
// Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sunwindow/sunwindow/internal/provider/resilience"
	"github.com/sunwindow/sunwindow/internal/uv"
)

const (
	// ProviderName identifies this UV provider.
	ProviderName = "openmeteo"

	// DefaultBaseURL is the Open-Meteo forecast API base URL.
	DefaultBaseURL = "https://api.open-meteo.com/v1"

	// localTimeLayout is Open-Meteo's wall-clock timestamp format.
	localTimeLayout = "2006-01-02T15:04"
)

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to Open-Meteo).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo API client. Open-Meteo requires no API key.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new Open-Meteo client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// FetchForecast fetches one day of hourly UV data plus sunrise/sunset for
// a location. The provider resolves the location's timezone server-side
// (timezone=auto) and returns wall-clock timestamps in it.
func (c *Client) FetchForecast(ctx context.Context, lat, lon float64) (*uv.Forecast, error) {
	url := fmt.Sprintf("%s/forecast?latitude=%.4f&longitude=%.4f&hourly=uv_index&daily=sunrise,sunset&timezone=auto&forecast_days=1",
		c.baseURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var omResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&omResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return c.toForecast(&omResp)
}

// toForecast converts the Open-Meteo response to the domain model. This is
// the boundary where loosely-typed provider timestamps get resolved to
// concrete local times; nothing downstream touches timezones again.
func (c *Client) toForecast(resp *forecastResponse) (*uv.Forecast, error) {
	loc := c.resolveLocation(resp)

	forecast := &uv.Forecast{
		Lat:       resp.Latitude,
		Lon:       resp.Longitude,
		Timezone:  resp.Timezone,
		Location:  loc,
		Hourly:    make([]uv.HourlyUV, 0, len(resp.Hourly.Time)),
		FetchedAt: time.Now(),
		Provider:  ProviderName,
	}

	if len(resp.Hourly.Time) != len(resp.Hourly.UVIndex) {
		return nil, fmt.Errorf("hourly series mismatch: %d times, %d values",
			len(resp.Hourly.Time), len(resp.Hourly.UVIndex))
	}

	for i, ts := range resp.Hourly.Time {
		t, err := time.ParseInLocation(localTimeLayout, ts, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing hourly time %q: %w", ts, err)
		}
		forecast.Hourly = append(forecast.Hourly, uv.HourlyUV{
			Time:    t,
			UVIndex: resp.Hourly.UVIndex[i],
		})
	}

	// Open-Meteo omits or blanks rise/set entries during polar day/night;
	// the zero time carries that through.
	if len(resp.Daily.Sunrise) > 0 && resp.Daily.Sunrise[0] != "" {
		if t, err := time.ParseInLocation(localTimeLayout, resp.Daily.Sunrise[0], loc); err == nil {
			forecast.Sunrise = t
		}
	}
	if len(resp.Daily.Sunset) > 0 && resp.Daily.Sunset[0] != "" {
		if t, err := time.ParseInLocation(localTimeLayout, resp.Daily.Sunset[0], loc); err == nil {
			forecast.Sunset = t
		}
	}

	return forecast, nil
}

// resolveLocation loads the IANA timezone named in the response, falling
// back to the reported fixed UTC offset when the name is unknown to the
// local zone database.
func (c *Client) resolveLocation(resp *forecastResponse) *time.Location {
	if resp.Timezone != "" {
		if loc, err := time.LoadLocation(resp.Timezone); err == nil {
			return loc
		}
		c.logger.Warn().
			Str("timezone", resp.Timezone).
			Int("utc_offset_seconds", resp.UTCOffsetSeconds).
			Msg("unknown timezone name, using fixed offset")
	}
	return time.FixedZone(resp.Timezone, resp.UTCOffsetSeconds)
}
